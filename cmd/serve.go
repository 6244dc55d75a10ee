package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpHdlr "manualrag/handler/http"
	"manualrag/src/log"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the manual query server",
	Long: `The serve command builds the manual index and starts an HTTP server
answering POST /query and POST /search.`,
	RunE: RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "listen port (overrides server.port)")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func RunServer(cmd *cobra.Command, args []string) error {
	// The index is complete before the listener accepts requests.
	svc, err := buildServices(cmd.Context())
	if err != nil {
		log.Error(err, "Failed to initialize services")
		return err
	}

	if !viper.GetBool("log.development") {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httpHdlr.NewHandler(svc.query, svc.system)
	r := httpHdlr.NewRouter(handler)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server listening", "addr", srv.Addr, "index_size", svc.retriever.IndexSize())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
		return err
	}

	log.Info("Server exited")
	return nil
}
