//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/beatmaking/rollsheet/cmd"
	"github.com/beatmaking/rollsheet/model"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeMidiFile(t *testing.T, path string, channel uint8, pitches []uint8) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var tr smf.Track
	for _, p := range pitches {
		tr.Add(0, gomidi.NoteOn(channel, p, 100))
		tr.Add(480, gomidi.NoteOff(channel, p))
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(path); err != nil {
		t.Fatal(err)
	}
}

func createGeometryReqBody(t *testing.T, dir string, song string) io.Reader {
	data, err := json.Marshal(model.GeometryRequestBody{Dir: dir, Song: song})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestGeometryEndpoint(t *testing.T) {
	dir := t.TempDir()
	writeMidiFile(t, filepath.Join(dir, "bass.mid"), 0, []uint8{36, 38, 40})
	writeMidiFile(t, filepath.Join(dir, "melody.mid"), 0, []uint8{72, 76, 79})

	req := httptest.NewRequest(http.MethodPost, "/geometry", createGeometryReqBody(t, dir, "Test Song"))
	w := httptest.NewRecorder()
	cmd.HandleGeometry(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var geo model.SheetGeometry
	err := json.Unmarshal(respBody, &geo)
	assert.NoError(err)

	assert.Equal("Test Song", geo.Song)
	// three sequential beats per file, rounded up to one bar
	assert.Equal(1, geo.Bars)
	assert.InDelta(4.0, geo.RenderedBeats, 1e-9)
	assert.Len(geo.Tracks, 2)
	assert.Equal(model.RoleBass, geo.Tracks[0].Role)
	assert.Equal(model.RoleMelody, geo.Tracks[1].Role)
	assert.Len(geo.Tracks[0].Notes, 3)
}

func TestGeometryEndpointEmptyDir(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/geometry", createGeometryReqBody(t, t.TempDir(), ""))
	w := httptest.NewRecorder()
	cmd.HandleGeometry(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(422, resp.StatusCode)

	var errResp model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errResp))
	assert.Equal("nothing to render", errResp.Error)
}

func TestGeometryEndpointMissingDir(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/geometry", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	cmd.HandleGeometry(w, req)

	assert.Equal(t, 400, w.Result().StatusCode)
}
