package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prepsheet-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for prep sheet requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv()
		if err != nil {
			return err
		}

		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"status":    "ok",
				"companies": env.Directory.Len(),
			})
		})

		// Runs take tens of seconds: the request blocks until both stages
		// finish, matching the single-user interactive tool this replaces.
		mux.HandleFunc("POST /prep", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Company string `json:"company"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if req.Company == "" {
				http.Error(w, `{"error":"company is required"}`, http.StatusBadRequest)
				return
			}

			run, err := env.Orchestrator.Run(r.Context(), req.Company)
			if err != nil {
				zap.L().Error("serve: run cancelled", zap.String("company", req.Company), zap.Error(err))
				http.Error(w, `{"error":"request cancelled"}`, http.StatusServiceUnavailable)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if run.State == model.StateFailed {
				w.WriteHeader(http.StatusBadGateway)
			} else {
				w.WriteHeader(http.StatusOK)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"run_id":   run.ID,
				"company":  run.Company.Name,
				"match":    run.Company.Match,
				"state":    run.State,
				"document": run.Document(),
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
