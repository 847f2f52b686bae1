// Package chromatest provides an in-memory vector database HTTP API for tests.
package chromatest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/labstack/echo/v4"
)

// Server is a fake vector database exposing the v1 collection endpoints.
type Server struct {
	*httptest.Server

	mu              sync.Mutex
	collections     map[string]map[string]interface{}
	documents       map[string][]string
	heartbeatStatus int
	createStatus    map[string]int
	requests        []string
}

type createRequest struct {
	Name     string                 `json:"name"`
	Metadata map[string]interface{} `json:"metadata"`
}

type addRequest struct {
	IDs       []string                 `json:"ids"`
	Documents []string                 `json:"documents"`
	Metadatas []map[string]interface{} `json:"metadatas"`
}

// NewServer starts a fake server; it is closed by the caller.
func NewServer() *Server {
	s := &Server{
		collections:     map[string]map[string]interface{}{},
		documents:       map[string][]string{},
		heartbeatStatus: http.StatusOK,
		createStatus:    map[string]int{},
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s.record(c.Request().Method + " " + c.Request().URL.Path)
			return next(c)
		}
	})
	e.GET("/api/v1/heartbeat", s.heartbeat)
	e.POST("/api/v1/collections", s.create)
	e.GET("/api/v1/collections", s.list)
	e.GET("/api/v1/collections/:name", s.get)
	e.POST("/api/v1/collections/:name/add", s.add)

	s.Server = httptest.NewServer(e)
	return s
}

// SetHeartbeatStatus changes the status returned by the heartbeat endpoint.
func (s *Server) SetHeartbeatStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heartbeatStatus = code
}

// FailCreate makes creation of name answer with code.
func (s *Server) FailCreate(name string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createStatus[name] = code
}

// Seed registers an existing collection.
func (s *Server) Seed(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = map[string]interface{}{}
}

// Metadata returns the metadata a collection was created with.
func (s *Server) Metadata(name string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collections[name]
}

// Documents returns the documents added to a collection.
func (s *Server) Documents(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.documents[name]...)
}

// Requests returns "METHOD path" for every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(req string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
}

func (s *Server) heartbeat(c echo.Context) error {
	s.mu.Lock()
	code := s.heartbeatStatus
	s.mu.Unlock()
	return c.JSON(code, map[string]int64{"nanosecond heartbeat": 1})
}

func (s *Server) create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if code, ok := s.createStatus[req.Name]; ok {
		return c.JSON(code, map[string]string{"error": "injected failure"})
	}
	if _, exists := s.collections[req.Name]; exists {
		return c.JSON(http.StatusConflict, map[string]string{"error": "collection already exists"})
	}
	s.collections[req.Name] = req.Metadata
	return c.JSON(http.StatusCreated, map[string]interface{}{"id": req.Name + "-id", "name": req.Name, "metadata": req.Metadata})
}

func (s *Server) list(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]interface{}{"id": name + "-id", "name": name, "metadata": s.collections[name]})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) get(c echo.Context) error {
	name := c.Param("name")
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.collections[name]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "collection not found"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": name + "-id", "name": name, "metadata": meta})
}

func (s *Server) add(c echo.Context) error {
	name := c.Param("name")
	var req addRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if len(req.IDs) != len(req.Documents) || len(req.IDs) != len(req.Metadatas) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "ids, documents and metadatas differ in length"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "collection not found"})
	}
	s.documents[name] = append(s.documents[name], req.Documents...)
	return c.JSON(http.StatusCreated, true)
}
