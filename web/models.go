/* models.go
 * Contains the data types used by the web package
 */

package web

import "log/slog"

// Config carries the keep-alive server settings parsed in main.go.
type Config struct {
	Port     string
	SelfPing bool
	SelfURL  string
	Log      *slog.Logger
}

// healthResponse is the /health payload.
type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
