package storefront

import (
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Error(codes.NotFound, "session not found")

	case errors.Is(err, domain.ErrEmptySessionID):
		return status.Error(codes.InvalidArgument, "session id cannot be empty")

	case errors.Is(err, domain.ErrNoTiersConfigured):
		return status.Error(codes.FailedPrecondition, "no membership tiers configured")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
