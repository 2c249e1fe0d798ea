package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hollowbeak/stacks/pkg/api"
	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/metrics"
	"github.com/hollowbeak/stacks/pkg/queue"
	"github.com/hollowbeak/stacks/pkg/structs"
)

func newTestServer(t *testing.T) (*mux.Router, *database.Memory, *queue.Memory) {
	t.Helper()
	db := database.NewMemory()
	qu := queue.NewMemoryQueue()
	sink := metrics.NewPrometheus(prometheus.NewRegistry())
	col := api.Collaborators(db, nil, zerolog.Nop())

	s := NewServer("localhost:0", false, zerolog.Nop())
	s.svc = api.NewWithComponents(db, qu, sink, col, nil, zerolog.Nop())
	return s.router(), db, qu
}

func do(router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := do(router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestCreateLibraryEndpoint(t *testing.T) {
	router, db, qu := newTestServer(t)
	root := t.TempDir()

	w := do(router, http.MethodPost, "/api/v1/libraries", &structs.CreateLibraryRequest{Root: root})

	assert.Equal(t, http.StatusOK, w.Code)
	l := &structs.Library{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), l))
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, root, l.Root)

	stored, err := db.Library(l.ID)
	assert.Nil(t, err)
	assert.NotNil(t, stored)

	// creation enqueues the first scan
	n, err := qu.Len(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreateLibraryEndpointRejectsBadRequests(t *testing.T) {
	router, _, _ := newTestServer(t)

	// no root
	w := do(router, http.MethodPost, "/api/v1/libraries", &structs.CreateLibraryRequest{Name: "empty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown field
	w = do(router, http.MethodPost, "/api/v1/libraries", map[string]string{"root": "/data", "colour": "blue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLibrariesEndpoint(t *testing.T) {
	router, db, _ := newTestServer(t)
	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib", Name: "Main", Root: "/data"}))

	w := do(router, http.MethodGet, "/api/v1/libraries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items := []*structs.Library{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "lib", items[0].ID)
}

func TestScanEndpoint(t *testing.T) {
	router, db, qu := newTestServer(t)
	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib", Root: "/data"}))

	w := do(router, http.MethodPost, "/api/v1/libraries/lib/scan", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	n, err := qu.Len(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)

	w = do(router, http.MethodPost, "/api/v1/libraries/no-such-library/scan", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmptyTrashEndpoint(t *testing.T) {
	router, db, qu := newTestServer(t)
	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib", Root: "/data"}))

	w := do(router, http.MethodPost, "/api/v1/libraries/lib/trash/empty", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	n, err := qu.Len(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)
}

func TestImportBookEndpoint(t *testing.T) {
	router, db, qu := newTestServer(t)
	assert.Nil(t, db.InsertSeries([]*structs.Series{{ID: "s1", LibraryID: "lib"}}))

	w := do(router, http.MethodPost, "/api/v1/books/import", &structs.ImportBookRequest{
		SeriesID:   "s1",
		SourceFile: "/incoming/Alpha 03.cbz",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	n, err := qu.Len(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)

	w = do(router, http.MethodPost, "/api/v1/books/import", &structs.ImportBookRequest{
		SeriesID:   "s1",
		SourceFile: "/incoming/Alpha 03.cbz",
		CopyMode:   "SYMLINK",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRebuildIndexEndpoint(t *testing.T) {
	router, _, qu := newTestServer(t)

	w := do(router, http.MethodPost, "/api/v1/index/rebuild", []*structs.ObjectRef{})
	assert.Equal(t, http.StatusOK, w.Code)

	n, err := qu.Len(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)

	w = do(router, http.MethodPost, "/api/v1/index/rebuild", []*structs.ObjectRef{{Kind: "Magazine", ID: "m1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueStatsEndpoint(t *testing.T) {
	router, db, _ := newTestServer(t)
	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib", Root: "/data"}))

	for i := 0; i < 3; i++ {
		w := do(router, http.MethodPost, "/api/v1/libraries/lib/scan", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := do(router, http.MethodGet, "/api/v1/queue", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	stats := &structs.QueueStats{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), stats))
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, 0, stats.Workers)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := do(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMapError(t *testing.T) {
	assert.Equal(t, http.StatusOK, mapError(nil))
	for _, errs := range errmap {
		for _, e := range errs {
			assert.Equal(t, http.StatusBadRequest, mapError(fmt.Errorf("wrapped: %w", e)))
		}
	}
	assert.Equal(t, http.StatusInternalServerError, mapError(fmt.Errorf("boom")))
}
