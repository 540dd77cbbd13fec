package storefront

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const sessionIDField = "session_id"

// validateSessionRequest extracts the required session_id.
func validateSessionRequest(req *structpb.Struct) (string, error) {
	v, ok := req.GetFields()[sessionIDField]
	if !ok {
		return "", status.Error(codes.InvalidArgument, "session_id is required")
	}
	if _, isString := v.GetKind().(*structpb.Value_StringValue); !isString {
		return "", status.Error(codes.InvalidArgument, "session_id must be a string")
	}
	id := strings.TrimSpace(v.GetStringValue())
	if id == "" {
		return "", status.Error(codes.InvalidArgument, "session_id is required")
	}
	return id, nil
}
