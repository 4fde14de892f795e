package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
}

func stubConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = old })
	userConfigDirFunc = func() (string, error) { return dir, nil }
	return dir
}

func TestGetTrayAppConfigDir(t *testing.T) {
	dir := stubConfigDir(t)

	want := filepath.Join(dir, constants.TrayAppIdentifier)
	got, err := GetTrayAppConfigDir()
	if err != nil || got != want {
		t.Errorf("GetTrayAppConfigDir() = %s, %v, want %s", got, err, want)
	}

	if err := os.MkdirAll(want, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "/custom/liftshift/dir"
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, custom)
	if err := os.WriteFile(filepath.Join(want, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	got, err = GetTrayAppConfigDir()
	if err != nil || got != custom {
		t.Errorf("GetTrayAppConfigDir() = %s, %v, want %s", got, err, custom)
	}
}

func TestParseLockfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    endpoint
		wantErr string
	}{
		{name: "valid", content: "8080|12345|secret\n", want: endpoint{Port: 8080, PID: 12345, Secret: "secret"}},
		{name: "two parts", content: "8080|12345", wantErr: "malformed"},
		{name: "garbage", content: "invalid", wantErr: "malformed"},
		{name: "empty secret", content: "8080|12345|", wantErr: "secret"},
		{name: "empty port", content: "|12345|secret", wantErr: "port"},
		{name: "port out of range", content: "99999|12345|secret", wantErr: "range"},
		{name: "bad pid", content: "8080|abc|secret", wantErr: "process ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLockfile(tt.content)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("parseLockfile() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLockfile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseLockfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	lockfile := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, err := findAndValidateTrayProcess(lockfile); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("missing lockfile error = %v, want ErrTrayNotRunning", err)
	}

	if err := os.WriteFile(lockfile, []byte("8080|12345|testsecret123"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		executable string
		wantErr    bool
	}{
		{name: "process gone", executable: "", wantErr: true},
		{name: "pid reused by other app", executable: "other-app", wantErr: true},
		{name: "tray app", executable: constants.NotifierExecutable, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcess(t, tt.executable)
			ep, err := findAndValidateTrayProcess(lockfile)
			if (err != nil) != tt.wantErr {
				t.Fatalf("findAndValidateTrayProcess() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (ep.Port != 8080 || ep.Secret != "testsecret123") {
				t.Errorf("endpoint = %+v", ep)
			}
		})
	}
}

func newTrayServer(t *testing.T, secret string) (*httptest.Server, *[]WebhookPayload) {
	t.Helper()
	var received []WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get(secretHeader) != secret {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		received = append(received, payload)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func serverPort(t *testing.T, server *httptest.Server) int {
	t.Helper()
	parts := strings.Split(server.URL, ":")
	port, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		t.Fatal(err)
	}
	return port
}

func TestSend(t *testing.T) {
	server, _ := newTrayServer(t, "test-secret")
	port := serverPort(t, server)
	n := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		secret  string
		text    string
		wantErr bool
	}{
		{name: "success", secret: "test-secret", text: "hello"},
		{name: "missing secret", secret: "", text: "hello", wantErr: true},
		{name: "wrong secret", secret: "wrong-secret", text: "hello", wantErr: true},
		{name: "server error", secret: "test-secret", text: "fail", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := n.send(ctx, endpoint{Port: port, Secret: tt.secret}, WebhookPayload{Text: tt.text})
			if (err != nil) != tt.wantErr {
				t.Errorf("send() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotify(t *testing.T) {
	server, received := newTrayServer(t, "s3cret")
	dir := stubConfigDir(t)
	stubProcess(t, constants.NotifierExecutable)

	trayDir := filepath.Join(dir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%d|4242|s3cret", serverPort(t, server))
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New().Notify(context.Background(), "PUSH A 10:00-12:30"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if len(*received) != 1 || (*received)[0].Text != "PUSH A 10:00-12:30" {
		t.Errorf("received = %+v", *received)
	}
	if (*received)[0].DurationMs != constants.NotificationDurationMs {
		t.Errorf("DurationMs = %d, want %d", (*received)[0].DurationMs, constants.NotificationDurationMs)
	}
}

func TestWorkoutMessage(t *testing.T) {
	s := &models.WorkoutSuggestion{
		WorkoutType: models.WorkoutPush,
		WeekType:    models.WeekA,
		StartTime:   "16:00",
		EndTime:     "18:30",
		Confidence:  models.ConfidenceIdeal,
		Reason:      "friend's classes are over, train together",
	}
	want := "PUSH A 16:00-18:30 (ideal): friend's classes are over, train together"
	if got := WorkoutMessage("2025-01-08", s); got != want {
		t.Errorf("WorkoutMessage() = %q, want %q", got, want)
	}
	if got := WorkoutMessage("2025-01-12", nil); got != "No workout slot found for 2025-01-12" {
		t.Errorf("WorkoutMessage(nil) = %q", got)
	}
}
