package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"reflect"
	"runtime"
	"time"

	"github.com/drakos74/price-serve/internal/api"
	"github.com/rs/zerolog/log"
)

type Method string

const (
	GET  Method = "GET"
	POST Method = "POST"
)

// Handler processes a request and returns the response payload with the intended status code.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Path   string
	Method Method
	Exec   Handler
}

type Server struct {
	name     string
	port     int
	debug    bool
	block    api.Block
	routes   []Route
	handlers map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:     name,
		port:     port,
		block:    api.NewBlock(),
		routes:   make([]Route, 0),
		handlers: make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// AddRoute adds a route to the server
func (s *Server) AddRoute(method Method, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Handle mounts a raw http handler on the given path, outside the route gating.
func (s *Server) Handle(path string, handler http.Handler) *Server {
	s.handlers[path] = handler
	return s
}

func (s *Server) handle(method Method, handler Handler) func(w http.ResponseWriter, r *http.Request) {
	// we should only handle one request per time,
	// in order to ease memory footprint.
	name := runtime.FuncForPC(reflect.ValueOf(handler).Pointer()).Name()
	return func(w http.ResponseWriter, r *http.Request) {
		signal := api.NewSignal(fmt.Sprintf("%s request : %s", method, name)).Create()
		s.block.Action <- signal
		defer func() {
			s.block.ReAction <- signal
		}()
		requestMethod := Method(r.Method)
		switch requestMethod {
		case method:
			b, code, err := handler(r)
			if err != nil {
				s.error(w, code, err)
			} else {
				s.respond(w, b, code)
			}
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
	}
}

// Run starts the server
func (s *Server) Run() error {
	go func() {
		for action := range s.block.Action {
			log.Info().
				Time("time", action.Time).
				Str("id", action.ID).
				Str("action", action.Name).
				Msg("started execution")
			reaction := <-s.block.ReAction
			log.Info().
				Time("time", action.Time).
				Str("id", reaction.ID).
				Float64("duration", time.Since(action.Time).Seconds()).
				Msg("completed execution")
		}
	}()

	for _, route := range s.routes {
		http.HandleFunc(fmt.Sprintf("/%s", route.Path), s.handle(route.Method, route.Exec))
	}
	for path, handler := range s.handlers {
		http.Handle(path, handler)
	}

	log.Warn().Str("server", s.name).Int("port", s.port).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), nil); err != nil {
		return fmt.Errorf("could not start inference server: %w", err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, b []byte, code int) {
	w.Header().Set("Content-Type", "application/json")
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, code int, err error) {
	log.Error().Err(err).Msg("error for http request")
	if code < http.StatusBadRequest {
		code = http.StatusBadRequest
	}
	s.respond(w, Error(err), code)
}

// Error encodes the given error into a json payload.
func Error(err error) []byte {
	b, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		return []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
	}
	return b
}

// Live returns a route that always responds, to signal process liveness.
func Live() Route {
	return Route{
		Path:   "live",
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// JsonRead parses the request body into the given struct.
func JsonRead(r *http.Request, debug bool, v interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if debug {
		log.Info().
			Str("url", fmt.Sprintf("%+v", r.URL)).
			Str("request", r.RequestURI).
			Str("remote-address", r.RemoteAddr).
			Str("method", r.Method).
			Str("body", string(body)).
			Msg("received payload")
	}
	return json.Unmarshal(body, v)
}
