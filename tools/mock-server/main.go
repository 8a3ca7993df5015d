// Package main implements a mock Target API server for local development.
// It serves canned responses from JSON fixtures for both the catalog host
// and the aggregation host, so the CLI and API server can be exercised
// without a real Target API key.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultPageSize = 24

type searchEnvelope struct {
	Products []json.RawMessage `json:"products"`
}

type productSummary struct {
	TCIN  string `json:"tcin"`
	Title string `json:"title"`
}

type aggregationEnvelope struct {
	Data struct {
		Product struct {
			Children []productSummary `json:"children"`
		} `json:"product"`
	} `json:"data"`
}

// fixtures holds the canned responses keyed the way the handlers look them up.
type fixtures struct {
	locations   json.RawMessage
	search      []json.RawMessage
	fulfillment map[string]json.RawMessage
	pdp         map[string]json.RawMessage
	atp         map[string]json.RawMessage
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureDir := flag.String("fixtures", "tools/mock-server/testdata", "directory holding the fixture files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixtures(*fixtureDir)
	if err != nil {
		logger.Error("failed to load fixtures", "dir", *fixtureDir, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures",
		"search", len(fx.search),
		"fulfillment", len(fx.fulfillment),
		"pdp", len(fx.pdp),
		"atp", len(fx.atp),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Target server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newHandler(logger, fx),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newHandler serves both Target hosts from one mux. Point the catalog and
// aggregation URLs at the same server.
func newHandler(logger *slog.Logger, fx *fixtures) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ship_locations/v1", locationsHandler(logger, fx))
	mux.HandleFunc("GET /redsky_aggregations/v1/web/plp_search_v1", searchHandler(logger, fx))
	mux.HandleFunc("GET /redsky_aggregations/v1/web_platform/product_fulfillment_v1", fulfillmentHandler(logger, fx))
	mux.HandleFunc("GET /redsky_aggregations/v1/web/pdp_client_v1", pdpHandler(logger, fx))
	mux.HandleFunc("GET /available_to_promise/v2/{tcin}", atpHandler(logger, fx))
	return requestLogger(logger, requireKey(logger, mux))
}

func loadFixtures(dir string) (*fixtures, error) {
	fx := &fixtures{}

	if err := readFixture(filepath.Join(dir, "locations.json"), &fx.locations); err != nil {
		return nil, err
	}
	var search searchEnvelope
	if err := readFixture(filepath.Join(dir, "search.json"), &search); err != nil {
		return nil, err
	}
	fx.search = search.Products
	if err := readFixture(filepath.Join(dir, "fulfillment.json"), &fx.fulfillment); err != nil {
		return nil, err
	}
	if err := readFixture(filepath.Join(dir, "pdp.json"), &fx.pdp); err != nil {
		return nil, err
	}
	if err := readFixture(filepath.Join(dir, "atp.json"), &fx.atp); err != nil {
		return nil, err
	}
	return fx, nil
}

func readFixture(path string, dst any) error {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", filepath.Base(path), err)
	}
	return nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Has("key") {
			q.Set("key", "REDACTED")
		}
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", q.Encode())
		next.ServeHTTP(w, r)
	})
}

// requireKey rejects requests without a key parameter. The value itself is
// not checked.
func requireKey(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			logger.Warn("request missing api key", "path", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":   "unauthorized",
				"message": "missing api key",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func locationsHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeRaw(w, http.StatusOK, fx.locations)
		logger.Info("ship locations")
	}
}

func searchHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	// Pre-parse titles for filtering.
	type indexedProduct struct {
		raw   json.RawMessage
		title string
	}
	products := make([]indexedProduct, 0, len(fx.search))
	for _, raw := range fx.search {
		var s productSummary
		//nolint:errcheck,gosec // fixture data is trusted; title extraction is best-effort
		json.Unmarshal(raw, &s)
		products = append(products, indexedProduct{raw: raw, title: strings.ToLower(s.Title)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("keyword")))
		if keyword == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "keyword is required"})
			return
		}

		page := 1
		if v, err := strconv.Atoi(r.URL.Query().Get("pageNumber")); err == nil && v > 0 {
			page = v
		}
		size := defaultPageSize
		if v, err := strconv.Atoi(r.URL.Query().Get("count")); err == nil && v > 0 {
			size = v
		}

		matched := []json.RawMessage{}
		for _, p := range products {
			if strings.Contains(p.title, keyword) {
				matched = append(matched, p.raw)
			}
		}

		total := len(matched)
		offset := (page - 1) * size
		if offset >= total {
			matched = []json.RawMessage{}
		} else {
			matched = matched[offset:min(offset+size, total)]
		}

		writeJSON(w, http.StatusOK, searchEnvelope{Products: matched})
		logger.Info("search", "keyword", keyword, "matched", total, "returned", len(matched), "page", page)
	}
}

func fulfillmentHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tcin := r.URL.Query().Get("tcin")
		body, ok := fx.fulfillment[tcin]
		if !ok {
			notFound(w, logger, "fulfillment", tcin)
			return
		}
		writeRaw(w, http.StatusOK, body)
		logger.Info("fulfillment", "tcin", tcin)
	}
}

// pdpHandler answers a variant tcin with its parent record, the way the
// live endpoint does.
func pdpHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	parents := make(map[string]string)
	for tcin, raw := range fx.pdp {
		var env aggregationEnvelope
		//nolint:errcheck,gosec // fixture data is trusted; child extraction is best-effort
		json.Unmarshal(raw, &env)
		for _, child := range env.Data.Product.Children {
			parents[child.TCIN] = tcin
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		tcin := q.Get("tcin")
		if q.Get("store_id") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "store_id is required"})
			return
		}

		key := tcin
		if parent, ok := parents[tcin]; ok {
			key = parent
		}
		body, ok := fx.pdp[key]
		if !ok {
			notFound(w, logger, "pdp", tcin)
			return
		}
		writeRaw(w, http.StatusOK, body)
		logger.Info("pdp", "tcin", tcin, "record", key, "store_id", q.Get("store_id"))
	}
}

func atpHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tcin := r.PathValue("tcin")
		body, ok := fx.atp[tcin]
		if !ok {
			notFound(w, logger, "atp", tcin)
			return
		}
		writeRaw(w, http.StatusOK, body)
		logger.Info("atp", "tcin", tcin, "nearby_store", r.URL.Query().Get("nearby_store"))
	}
}

func notFound(w http.ResponseWriter, logger *slog.Logger, endpoint, tcin string) {
	logger.Info("no fixture", "endpoint", endpoint, "tcin", tcin)
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":   "not_found",
		"message": "no product found for tcin " + tcin,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(body)
}
