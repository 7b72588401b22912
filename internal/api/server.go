// Package api exposes the tool packages as a thin REST layer. Handlers
// decode JSON, delegate to the tool functions and encode the result; no
// business logic lives here.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pavania1999/complex-tools-openapi/pkg/tools/employees"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/enums"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/inventory"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/orders"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/profile"
	"github.com/pavania1999/complex-tools-openapi/toolkit"
)

const serviceName = "Complex Tools API"
const serviceVersion = "1.0.0"

// Server wires the tool packages behind HTTP routes.
type Server struct {
	profiles *profile.Manager
	specs    *SpecStore
	tk       *toolkit.Toolkit
}

// NewServer builds the full route table and returns it as an http.Handler.
func NewServer(profiles *profile.Manager, specs *SpecStore, tk *toolkit.Toolkit) http.Handler {
	s := &Server{profiles: profiles, specs: specs, tk: tk}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/orders/process", s.handleProcessOrder)
	mux.HandleFunc("POST /api/v1/orders/process-batch", s.handleProcessBatch)

	mux.HandleFunc("POST /api/v1/employees/process", s.handleProcessEmployee)
	mux.HandleFunc("POST /api/v1/employees/register", s.handleRegisterEmployee)

	mux.HandleFunc("POST /api/v1/inventory/process-items", s.handleProcessItems)
	mux.HandleFunc("POST /api/v1/inventory/process-items-raw", s.handleProcessItemsRaw)

	mux.HandleFunc("POST /api/v1/enums/account-status", s.handleAccountStatus)
	mux.HandleFunc("POST /api/v1/enums/customer-profile", s.handleCustomerProfile)
	mux.HandleFunc("POST /api/v1/enums/multi-level", s.handleMultiLevel)

	mux.HandleFunc("POST /api/v1/profile/start", s.handleProfileStart)
	mux.HandleFunc("PATCH /api/v1/profile/{id}/update", s.handleProfileUpdate)
	mux.HandleFunc("POST /api/v1/profile/{id}/finalize", s.handleProfileFinalize)
	mux.HandleFunc("GET /api/v1/profile/{id}/status", s.handleProfileStatus)

	mux.HandleFunc("POST /api/v1/toolkit", s.handleToolkit)
	mux.HandleFunc("GET /api/v1/openapi/{name}", s.handleOpenAPI)

	return jsonErrors(mux)
}

// --- info endpoints ---

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "REST API exposing nested-schema tools, conversational profile sessions and their OpenAPI documents",
		"endpoints":   endpointMap(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"endpoints": endpointMap(),
	})
}

func endpointMap() map[string]string {
	return map[string]string{
		"health":              "/api/v1/health",
		"orders":              "/api/v1/orders/process",
		"orders_batch":        "/api/v1/orders/process-batch",
		"employees":           "/api/v1/employees/process",
		"employees_register":  "/api/v1/employees/register",
		"inventory_wrapped":   "/api/v1/inventory/process-items",
		"inventory_raw":       "/api/v1/inventory/process-items-raw",
		"enums_status":        "/api/v1/enums/account-status",
		"enums_profile":       "/api/v1/enums/customer-profile",
		"enums_multi_level":   "/api/v1/enums/multi-level",
		"profile_start":       "/api/v1/profile/start",
		"profile_update":      "/api/v1/profile/{id}/update",
		"profile_finalize":    "/api/v1/profile/{id}/finalize",
		"profile_status":      "/api/v1/profile/{id}/status",
		"toolkit":             "/api/v1/toolkit",
		"openapi":             "/api/v1/openapi/{name}",
	}
}

// --- orders ---

func (s *Server) handleProcessOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.OrderRequest
	if !s.decodeObject(w, r, &req) {
		return
	}
	result, err := orders.ProcessOrder(r.Context(), req)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req inventory.BatchRequest
	if !s.decodeObject(w, r, &req) {
		return
	}
	result, err := inventory.ProcessBatchOrders(r.Context(), req)
	if err != nil {
		s.internalError(w, err)
		return
	}
	if result.Status == "failed" {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- employees ---

// handleProcessEmployee dispatches on the payload shape: employee records
// carry an "employee" or "personal" key, relationship payloads a "person" or
// "friendOf" key. Anything else gets an in-band error, not an HTTP one.
func (s *Server) handleProcessEmployee(w http.ResponseWriter, r *http.Request) {
	body, probe, ok := s.readProbe(w, r)
	if !ok {
		return
	}

	_, hasEmployee := probe["employee"]
	_, hasPersonal := probe["personal"]
	_, hasPerson := probe["person"]
	_, hasFriendOf := probe["friendOf"]

	switch {
	case hasEmployee || hasPersonal:
		var req employees.EmployeeRequest
		if hasEmployee {
			if err := json.Unmarshal(body, &req); err != nil {
				s.invalidRequest(w)
				return
			}
		} else if err := json.Unmarshal(body, &req.Employee); err != nil {
			s.invalidRequest(w)
			return
		}
		result, err := employees.ProcessEmployee(r.Context(), req)
		if err != nil {
			s.internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case hasPerson || hasFriendOf:
		var req employees.PersonRequest
		if hasPerson {
			if err := json.Unmarshal(body, &req); err != nil {
				s.invalidRequest(w)
				return
			}
		} else if err := json.Unmarshal(body, &req.Person); err != nil {
			s.invalidRequest(w)
			return
		}
		result, err := employees.AnalyzePerson(r.Context(), req)
		if err != nil {
			s.internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"error": "Unable to process data - please provide employee or person information",
		})
	}
}

func (s *Server) handleRegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req employees.RegistrationRequest
	if !s.decodeObject(w, r, &req) {
		return
	}
	result, err := employees.RegisterEmployee(r.Context(), req)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- inventory ---

func (s *Server) handleProcessItems(w http.ResponseWriter, r *http.Request) {
	body, probe, ok := s.readProbe(w, r)
	if !ok {
		return
	}

	rawItems, present := probe["items"]
	if !present {
		writeError(w, http.StatusBadRequest, "Missing required field", "MISSING_ITEMS",
			map[string]string{"message": "Request must contain 'items' array"})
		return
	}
	if _, isArray := rawItems.([]interface{}); !isArray {
		writeError(w, http.StatusBadRequest, "Invalid data type", "INVALID_ITEMS_TYPE",
			map[string]string{"message": "'items' must be an array"})
		return
	}

	var req inventory.ItemsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.invalidRequest(w)
		return
	}
	s.serveItemsResult(w, r, req)
}

// handleProcessItemsRaw accepts the bare JSON array form and wraps it before
// processing, so both shapes share one tool path.
func (s *Server) handleProcessItemsRaw(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		s.invalidRequest(w)
		return
	}

	var items []inventory.Item
	if err := json.Unmarshal(body, &items); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data type", "INVALID_TYPE",
			map[string]string{"message": "Request body must be an array"})
		return
	}
	s.serveItemsResult(w, r, inventory.ItemsRequest{Items: items})
}

func (s *Server) serveItemsResult(w http.ResponseWriter, r *http.Request, req inventory.ItemsRequest) {
	result, err := inventory.ProcessItems(r.Context(), req)
	if err != nil {
		s.internalError(w, err)
		return
	}
	if result.Status == "failed" {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- enums ---

func (s *Server) handleAccountStatus(w http.ResponseWriter, r *http.Request) {
	var args enums.AccountStatusArgs
	if !s.decodeObject(w, r, &args) {
		return
	}
	result, err := enums.UpdateAccountStatus(r.Context(), args)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCustomerProfile(w http.ResponseWriter, r *http.Request) {
	var args enums.CustomerProfileArgs
	if !s.decodeObject(w, r, &args) {
		return
	}
	result, err := enums.CreateCustomerProfile(r.Context(), args)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMultiLevel(w http.ResponseWriter, r *http.Request) {
	var args enums.MultiLevelArgs
	if !s.decodeObject(w, r, &args) {
		return
	}
	result, err := enums.CreateMultiLevelProfile(r.Context(), args)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- profile sessions ---

func (s *Server) handleProfileStart(w http.ResponseWriter, r *http.Request) {
	var initial map[string]interface{}
	if !s.decodeObject(w, r, &initial) {
		return
	}
	writeJSON(w, http.StatusCreated, s.profiles.Start(initial))
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if !s.decodeObject(w, r, &updates) {
		return
	}
	view, err := s.profiles.Update(r.PathValue("id"), updates)
	if err != nil {
		s.profileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleProfileFinalize(w http.ResponseWriter, r *http.Request) {
	result, err := s.profiles.Finalize(r.PathValue("id"))
	if err != nil {
		s.profileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProfileStatus(w http.ResponseWriter, r *http.Request) {
	view, err := s.profiles.Status(r.PathValue("id"))
	if err != nil {
		s.profileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) profileError(w http.ResponseWriter, err error) {
	var verr *profile.ValidationError
	switch {
	case errors.Is(err, profile.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found", "SESSION_NOT_FOUND",
			"No active profile session with that id")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":          "Profile incomplete",
			"code":           "VALIDATION_ERROR",
			"details":        verr.Error(),
			"missing_fields": verr.MissingFields,
		})
	default:
		s.internalError(w, err)
	}
}

// --- toolkit passthrough ---

func (s *Server) handleToolkit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		s.invalidRequest(w)
		return
	}

	resp, err := s.tk.HandleToolKit(r.Context(), body)
	if err != nil {
		var tkErr toolkit.ToolKitError
		switch {
		case errors.As(err, &tkErr):
			writeError(w, http.StatusBadRequest, tkErr.Message, strings.ToUpper(tkErr.Code), nil)
		case resp.Name != "":
			// Parse failures come back as a structured response alongside
			// the error, so hand that response to the client.
			writeJSON(w, http.StatusBadRequest, resp)
		default:
			s.internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- openapi documents ---

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	scheme := requestScheme(r.Header.Get("X-Forwarded-Proto"), r.TLS != nil)
	doc, err := s.specs.Load(r.PathValue("name"), scheme, r.Host)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to load OpenAPI spec",
			"details": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// --- helpers ---

func (s *Server) decodeObject(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		s.invalidRequest(w)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.invalidRequest(w)
		return false
	}
	return true
}

// readProbe reads the body once and parses it into a generic map so handlers
// can inspect the payload shape before a typed decode of the same bytes.
func (s *Server) readProbe(w http.ResponseWriter, r *http.Request) ([]byte, map[string]interface{}, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		s.invalidRequest(w)
		return nil, nil, false
	}
	var probe map[string]interface{}
	if err := json.Unmarshal(body, &probe); err != nil {
		s.invalidRequest(w)
		return nil, nil, false
	}
	return body, probe, true
}

func (s *Server) invalidRequest(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "Invalid request", "INVALID_REQUEST",
		"Request body must be valid JSON")
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	log.Printf("Internal error handling request: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, code string, details interface{}) {
	payload := map[string]interface{}{
		"error": message,
		"code":  code,
	}
	if details != nil {
		payload["details"] = details
	}
	writeJSON(w, status, payload)
}

// jsonErrors converts the mux's plain-text 404 and 405 replies into the JSON
// error shape the rest of the API speaks. Handler-written JSON errors pass
// through untouched.
func jsonErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&errorInterceptor{ResponseWriter: w}, r)
	})
}

type errorInterceptor struct {
	http.ResponseWriter
	wroteHeader bool
	replaced    bool
}

func (i *errorInterceptor) WriteHeader(status int) {
	if i.wroteHeader {
		return
	}
	i.wroteHeader = true

	fromMux := !strings.HasPrefix(i.Header().Get("Content-Type"), "application/json")
	if fromMux && (status == http.StatusNotFound || status == http.StatusMethodNotAllowed) {
		i.replaced = true
		i.Header().Set("Content-Type", "application/json")
		i.Header().Del("X-Content-Type-Options")
		i.ResponseWriter.WriteHeader(status)

		body := map[string]string{
			"error":   "Not found",
			"code":    "NOT_FOUND",
			"details": "The requested endpoint does not exist",
		}
		if status == http.StatusMethodNotAllowed {
			body = map[string]string{
				"error":   "Method not allowed",
				"code":    "METHOD_NOT_ALLOWED",
				"details": "The HTTP method is not allowed for this endpoint",
			}
		}
		if err := json.NewEncoder(i.ResponseWriter).Encode(body); err != nil {
			log.Printf("Error encoding error response: %v", err)
		}
		return
	}
	i.ResponseWriter.WriteHeader(status)
}

func (i *errorInterceptor) Write(b []byte) (int, error) {
	if !i.wroteHeader {
		i.WriteHeader(http.StatusOK)
	}
	if i.replaced {
		return len(b), nil
	}
	return i.ResponseWriter.Write(b)
}
