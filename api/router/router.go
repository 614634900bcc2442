package router

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	bootstrap "github.com/tbeaudouin05/authnet-billing/api/bootstrap"
	"github.com/tbeaudouin05/authnet-billing/api/services/authnet/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	WebhookPath = "/api/authorize-net/webhook"
	HealthPath  = "/healthz"

	// Authorize.Net notifications are small; anything larger is not ours.
	maxWebhookBody = 1 << 20
)

var marshaler = &runtime.JSONPb{}

// NewRouter returns the central HTTP router for the API using grpc-gateway's ServeMux.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	mux := runtime.NewServeMux()
	mustHandle(mux, http.MethodPost, WebhookPath, webhookHandler(mux))
	mustHandle(mux, http.MethodGet, HealthPath, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		writeEmpty(w)
	})
	return mux
}

func mustHandle(mux *runtime.ServeMux, method, path string, h runtime.HandlerFunc) {
	if err := mux.HandlePath(method, path, h); err != nil {
		panic(err)
	}
}

// webhookHandler passes the raw body to the billing service. Verification failures and
// malformed events are 400 so the gateway stops retrying; anything else is 500 so it
// redelivers.
func webhookHandler(mux *runtime.ServeMux) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		ctx := r.Context()
		svc := bootstrap.GetBillingService()
		if svc == nil {
			runtime.HTTPError(ctx, mux, marshaler, w, r, status.Error(codes.Unavailable, "billing service not initialized"))
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			runtime.HTTPError(ctx, mux, marshaler, w, r, status.Error(codes.InvalidArgument, "failed to read body"))
			return
		}

		if err := svc.HandleWebhook(ctx, body, r.Header.Get(app.SignatureHeader)); err != nil {
			runtime.HTTPError(ctx, mux, marshaler, w, r, toStatus(err))
			return
		}
		writeEmpty(w)
	}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidSignature):
		slog.Warn("webhook rejected", "err", err)
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrBadEvent):
		slog.Warn("webhook rejected", "err", err)
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		slog.Error("webhook handling failed", "err", err)
		return status.Error(codes.Internal, "webhook handling failed")
	}
}

func writeEmpty(w http.ResponseWriter) {
	b, err := marshaler.Marshal(&emptypb.Empty{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", marshaler.ContentType(nil))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
