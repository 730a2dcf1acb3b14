package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/riverreal/STween/stream"
)

// Api serves the controller's status over HTTP.
type Api struct {
	addr   string
	status func() stream.Status
}

// NewApi creates an instance of an Api object. An empty addr listens
// on :3000.
func NewApi(addr string, status func() stream.Status) *Api {
	a := new(Api)
	a.addr = addr
	if a.addr == "" {
		a.addr = ":3000"
	}
	a.status = status
	return a
}

// Handler builds the route table.
func (a *Api) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	return mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.status()); err != nil {
		log.Printf("encoding status: %v", err)
	}
}

// Serve listens forever.
func (a *Api) Serve() {
	log.Printf("Listening on %s...", a.addr)
	if err := http.ListenAndServe(a.addr, a.Handler()); err != nil {
		log.Fatal(err)
	}
}
