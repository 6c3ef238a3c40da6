// Package monitoring turns a set of live presence controllers into a small
// HTTP inspector, so animation state can be watched from outside the
// process while tuning transitions.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"

	"github.com/motionkit/presence"
	"github.com/motionkit/presence/timing"
)

// Monitor serves JSON snapshots of registered controllers.
type Monitor struct {
	portNumber  int
	timeTeller  timing.TimeTeller
	controllers []*presence.Controller

	url string
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterTimeTeller sets the timeline the /api/now endpoint reports.
func (m *Monitor) RegisterTimeTeller(t timing.TimeTeller) {
	m.timeTeller = t
}

// RegisterController registers a controller to be inspected.
func (m *Monitor) RegisterController(c *presence.Controller) {
	m.controllers = append(m.controllers, c)
}

// StartServer starts the monitor as a web server, on the configured port or
// a random free one.
func (m *Monitor) StartServer() {
	r := m.createRouter()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf(
		"http://localhost:%d", listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring presence with %s\n", m.url)

	go func() {
		dieOnErr(http.Serve(listener, r))
	}()
}

// OpenBrowser opens the inspector in the system browser. Call it after
// StartServer.
func (m *Monitor) OpenBrowser() {
	if m.url == "" {
		return
	}

	if err := browser.OpenURL(m.url); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

func (m *Monitor) createRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/list_controllers", m.listControllers)
	r.HandleFunc("/api/controller/{name}", m.controllerDetails)

	return r
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	var now timing.VTime
	if m.timeTeller != nil {
		now = m.timeTeller.CurrentTime()
	}

	fmt.Fprintf(w, "{\"now_ms\":%.3f}",
		float64(now.Microseconds())/1000.0)
}

func (m *Monitor) listControllers(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.controllers))
	for _, c := range m.controllers {
		names = append(names, c.Name())
	}

	writeJSON(w, names)
}

func (m *Monitor) controllerDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	for _, c := range m.controllers {
		if c.Name() == name {
			writeJSON(w, c.Observe())
			return
		}
	}

	http.Error(w,
		fmt.Sprintf("controller %s is not registered", name),
		http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	dieOnErr(json.NewEncoder(w).Encode(v))
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
