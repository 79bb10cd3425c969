package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const testSize = 24

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := scene.DefaultBoxSceneConfig()
	cfg.Width = testSize
	cfg.Height = testSize
	cfg.Threading = 1
	model := scene.EllipsoidModel(core.NewVec3(1, 0.7, 0.45), 6, 10)
	cfg.DetailedModel = &model

	s, err := scene.NewBoxScene(cfg)
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	return NewServer(0, s, renderer.DefaultConfig(), NewConsole(10))
}

func do(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) State {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var st State
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("Failed to decode state: %v", err)
	}
	return st
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("Expected ok status, got %s", rec.Body.String())
	}
}

func TestServer_Index(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/frame.png") {
		t.Error("Expected the page to load the frame")
	}
}

func TestServer_Frame(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/frame.png")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != testSize || b.Dy() != testSize {
		t.Errorf("Expected %dx%d image, got %v", testSize, testSize, b)
	}
}

func TestServer_State(t *testing.T) {
	srv := newTestServer(t)
	st := decodeState(t, do(t, srv, http.MethodGet, "/api/state"))

	if st.View != "front" {
		t.Errorf("Expected front view, got %q", st.View)
	}
	if len(st.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(st.Lights))
	}
	if st.Lights[0].Index != 1 || !st.Lights[0].Active {
		t.Errorf("Expected light 1 active, got %+v", st.Lights[0])
	}
	if st.BoundingVolume != "aabb" || !st.ShowBoundingVolume {
		t.Errorf("Expected visible aabb, got %q visible=%v", st.BoundingVolume, st.ShowBoundingVolume)
	}
	if st.Render != nil {
		t.Error("Expected no render before the first frame")
	}
}

func TestServer_Mutators(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		check  func(t *testing.T, st State)
	}{
		{
			name:   "Toggle light 1",
			method: http.MethodPost,
			path:   "/api/lights/1/toggle",
			check: func(t *testing.T, st State) {
				if st.Lights[0].Active {
					t.Error("Expected light 1 off")
				}
				if !st.Lights[1].Active {
					t.Error("Expected light 2 untouched")
				}
			},
		},
		{
			name:   "Cycle bounding volume",
			method: http.MethodPost,
			path:   "/api/bounding-volume/cycle",
			check: func(t *testing.T, st State) {
				if st.BoundingVolume != "oobb" {
					t.Errorf("Expected oobb, got %q", st.BoundingVolume)
				}
			},
		},
		{
			name:   "Hide bounding volume",
			method: http.MethodPost,
			path:   "/api/bounding-volume/visibility",
			check: func(t *testing.T, st State) {
				if st.ShowBoundingVolume {
					t.Error("Expected bounding volume hidden")
				}
			},
		},
		{
			name:   "View from the left",
			method: http.MethodPut,
			path:   "/api/view/left",
			check: func(t *testing.T, st State) {
				if st.View != "left" {
					t.Errorf("Expected left view, got %q", st.View)
				}
			},
		},
		{
			name:   "Sixteen workers",
			method: http.MethodPut,
			path:   "/api/threading/16",
			check: func(t *testing.T, st State) {
				if st.Threading != 16 {
					t.Errorf("Expected 16 workers, got %d", st.Threading)
				}
				if st.Render == nil || st.Render.Tiles != 16 {
					t.Errorf("Expected a 16 tile render, got %+v", st.Render)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			st := decodeState(t, do(t, srv, tt.method, tt.path))

			if st.Render == nil || st.Render.Pixels != testSize*testSize {
				t.Errorf("Expected the mutator to re-render, got %+v", st.Render)
			}
			tt.check(t, st)
		})
	}
}

func TestServer_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"Light index zero", http.MethodPost, "/api/lights/0/toggle"},
		{"Light index too large", http.MethodPost, "/api/lights/3/toggle"},
		{"Light index not a number", http.MethodPost, "/api/lights/first/toggle"},
		{"Unknown view", http.MethodPut, "/api/view/sideways"},
		{"Unsupported threading", http.MethodPut, "/api/threading/3"},
		{"Threading not a number", http.MethodPut, "/api/threading/many"},
		{"Inspect outside the image", http.MethodGet, "/api/inspect?x=-1&y=0"},
		{"Inspect without coordinates", http.MethodGet, "/api/inspect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			rec := do(t, srv, tt.method, tt.path)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode error: %v", err)
			}
			if body.Error == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestServer_FailedMutatorLeavesState(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPut, "/api/threading/5")

	st := decodeState(t, do(t, srv, http.MethodGet, "/api/state"))
	if st.Threading != 1 {
		t.Errorf("Expected threading to stay at 1, got %d", st.Threading)
	}
}

func TestServer_Inspect(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/inspect?x=12&y=12")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode inspect response: %v", err)
	}
	if !resp.Hit {
		t.Fatal("Expected a hit inside the closed box")
	}
	if resp.Object == "" || resp.Material == nil {
		t.Errorf("Expected object and material, got %+v", resp)
	}
	if resp.Object == "front wall" {
		t.Error("Expected the wall in front of the camera to be skipped")
	}
	if resp.Distance <= 0 {
		t.Errorf("Expected positive distance, got %f", resp.Distance)
	}
}

func TestServer_Console(t *testing.T) {
	console := NewConsole(10)
	console.Write([]byte("Enabled point light 1\n"))

	srv := newTestServer(t)
	srv.console = console

	rec := do(t, srv, http.MethodGet, "/api/console")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var messages []ConsoleMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &messages); err != nil {
		t.Fatalf("Failed to decode console: %v", err)
	}
	if len(messages) != 1 || messages[0].Message != "Enabled point light 1" {
		t.Errorf("Unexpected console messages: %+v", messages)
	}
}
