// Package notifier pushes short messages to the companion tray app, which
// announces itself through a lockfile holding "port|pid|secret".
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning is returned when no live tray process owns the lockfile.
var ErrTrayNotRunning = errors.New(constants.NotifierExecutable + " is not running")

const secretHeader = "X-Liftshift-Secret"

type Notifier struct {
	client *http.Client
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// endpoint is the parsed lockfile of a running tray app.
type endpoint struct {
	Port   int
	PID    int
	Secret string
}

func (e endpoint) url() string {
	return fmt.Sprintf("http://127.0.0.1:%d", e.Port)
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 5 * time.Second}}
}

// Notify delivers text to the tray app, retrying transient send failures.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	ep, err := findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	}

	var lastErr error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		if lastErr = n.send(ctx, ep, payload); lastErr == nil {
			return nil
		}
		logger.Debug("Notification attempt failed", "attempt", attempt, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(constants.NotifyRetryDelay):
		}
	}
	return lastErr
}

// WorkoutMessage renders the notification text for a day's workout suggestion.
// A nil suggestion means no slot was found.
func WorkoutMessage(date string, s *models.WorkoutSuggestion) string {
	if s == nil {
		return fmt.Sprintf("No workout slot found for %s", date)
	}
	msg := fmt.Sprintf("%s %s %s-%s (%s)", s.WorkoutType, s.WeekType, s.StartTime, s.EndTime, s.Confidence)
	if s.Reason != "" {
		msg += ": " + s.Reason
	}
	return msg
}

// GetTrayAppConfigDir returns the configuration directory used by the tray application.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// settings.json may point the lockfile somewhere else
	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err != nil {
		return trayConfigDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Warn("Ignoring unreadable tray settings", "error", err)
		return trayConfigDir, nil
	}
	if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
		return *store.Settings.LockfileDir, nil
	}
	return trayConfigDir, nil
}

func parseLockfile(content string) (endpoint, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return endpoint{}, errors.New("lockfile is malformed")
	}

	if strings.TrimSpace(parts[0]) == "" {
		return endpoint{}, errors.New("port in lockfile is empty")
	}
	port, err := strconv.Atoi(parts[0])
	if err != nil {
		return endpoint{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return endpoint{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return endpoint{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return endpoint{}, errors.New("secret in lockfile is empty")
	}

	return endpoint{Port: port, PID: pid, Secret: secret}, nil
}

func findAndValidateTrayProcess(lockfilePath string) (endpoint, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return endpoint{}, ErrTrayNotRunning
	}

	ep, err := parseLockfile(string(content))
	if err != nil {
		return endpoint{}, err
	}

	process, err := findProcessFunc(ep.PID)
	if err != nil || process == nil {
		return endpoint{}, fmt.Errorf("%w: stale lockfile for PID %d", ErrTrayNotRunning, ep.PID)
	}
	if !strings.HasPrefix(process.Executable(), constants.NotifierExecutable) {
		return endpoint{}, fmt.Errorf("process with PID %d is not %s (is %s)", ep.PID, constants.NotifierExecutable, process.Executable())
	}

	return ep, nil
}

func (n *Notifier) send(ctx context.Context, ep endpoint, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.url(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, ep.Secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}
