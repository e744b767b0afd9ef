// Package gatewaytest runs an in-process fake of the IntaSend gateway for tests.
package gatewaytest

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Request is a request captured by the fake gateway.
type Request struct {
	Method      string
	Path        string
	Query       string
	Bearer      string
	PublicKey   string
	ContentType string
	Body        []byte
}

// Decode unmarshals the captured body into v.
func (r Request) Decode(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decode captured %s %s body: %v", r.Method, r.Path, err)
	}
}

type cannedResponse struct {
	status  int
	body    []byte
	handler fiber.Handler
}

// Server is a fake gateway. Unregistered routes answer 404 with the
// gateway's usual {"detail": "Not found."} body.
type Server struct {
	URL string

	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []Request
	srv      *httptest.Server
}

// New starts a fake gateway that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{routes: make(map[string]cannedResponse)}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.All("/*", s.serve)

	s.srv = httptest.NewServer(adaptor.FiberApp(app))
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// Handle registers a canned response. path may carry a query string, in which
// case it only matches requests with exactly that query. body may be a string,
// a byte slice or any value that encodes to JSON.
func (s *Server) Handle(method, path string, status int, body any) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			panic("gatewaytest: encode canned body: " + err.Error())
		}
		raw = encoded
	}
	s.mu.Lock()
	s.routes[method+" "+path] = cannedResponse{status: status, body: raw}
	s.mu.Unlock()
}

// HandleFunc registers a handler for full control over the response.
func (s *Server) HandleFunc(method, path string, h fiber.Handler) {
	s.mu.Lock()
	s.routes[method+" "+path] = cannedResponse{handler: h}
	s.mu.Unlock()
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("fake gateway received no requests")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) serve(c *fiber.Ctx) error {
	req := Request{
		Method:      c.Method(),
		Path:        c.Path(),
		Query:       string(c.Request().URI().QueryString()),
		PublicKey:   c.Get("X-IntaSend-Public-API-Key"),
		ContentType: c.Get(fiber.HeaderContentType),
		Body:        append([]byte(nil), c.Body()...),
	}
	if auth := c.Get(fiber.HeaderAuthorization); len(auth) > 7 && auth[:7] == "Bearer " {
		req.Bearer = auth[7:]
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	resp, ok := s.routes[req.Method+" "+req.Path+"?"+req.Query]
	if !ok {
		resp, ok = s.routes[req.Method+" "+req.Path]
	}
	s.mu.Unlock()

	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found."})
	}
	if resp.handler != nil {
		return resp.handler(c)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.status).Send(resp.body)
}
