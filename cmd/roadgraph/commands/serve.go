package commands

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/LdDl/roadgraph"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve diagnostics and routes over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := importNetwork()
		if err != nil {
			return err
		}
		router, err := roadgraph.NewRouter(network.Graph, network.Weighting(), roadgraph.WithRouterLogger(logger))
		if err != nil {
			return err
		}
		if err = router.Prepare(); err != nil {
			return err
		}
		r := mux.NewRouter()
		NewGraphHandler(network, router).RegisterRoutes(r)
		logger.Info("Server is running", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, r)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

// GraphHandler exposes road network over HTTP
type GraphHandler struct {
	network *roadgraph.RoadNetwork
	router  *roadgraph.Router
}

func NewGraphHandler(network *roadgraph.RoadNetwork, router *roadgraph.Router) *GraphHandler {
	return &GraphHandler{
		network: network,
		router:  router,
	}
}

func (h *GraphHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.GetProblems).Methods("GET")
	router.HandleFunc("/api/edges/{id:[0-9]+}", h.GetEdge).Methods("GET")
	router.HandleFunc("/api/route", h.GetRoute).Methods("GET")
}

func (h *GraphHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	problems := roadgraph.DiagnoseCoordinates(h.network.Graph.NodeAccess())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"problems": problems,
		"count":    len(problems),
	})
}

func (h *GraphHandler) GetEdge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid edge id", http.StatusBadRequest)
		return
	}
	state, err := h.network.Graph.Edge(roadgraph.EdgeID(id))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":            state.Edge(),
		"base_node":     state.BaseNode(),
		"adj_node":      state.AdjNode(),
		"distance":      state.Distance(),
		"access":        h.network.Access.Get(state),
		"access_rev":    h.network.Access.GetReverse(state),
		"speed":         h.network.Speed.Get(state),
		"speed_reverse": h.network.Speed.GetReverse(state),
	})
}

func (h *GraphHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	source, errSource := strconv.Atoi(r.URL.Query().Get("source"))
	target, errTarget := strconv.Atoi(r.URL.Query().Get("target"))
	if errSource != nil || errTarget != nil {
		http.Error(w, "Query parameters 'source' and 'target' must be integers", http.StatusBadRequest)
		return
	}
	path, err := h.router.Route(roadgraph.NodeID(source), roadgraph.NodeID(target))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	feature, err := roadgraph.PathFeature(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, feature)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, roadgraph.ErrEdgeNotFound), errors.Is(err, roadgraph.ErrNodeNotFound), errors.Is(err, roadgraph.ErrNoRoute):
		return http.StatusNotFound
	case errors.Is(err, roadgraph.ErrInvalidArgument):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
