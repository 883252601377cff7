package errors

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil, "de-DE"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHandleErrorLocalizesDomainError(t *testing.T) {
	err := WithMetadata(CodeGameParadeWrongSoloist, "parade solo played out of order",
		map[string]string{"Expected": "bernd", "Actual": "clara"})

	st, ok := status.FromError(HandleError(err, "de-DE"))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.FailedPrecondition {
		t.Fatalf("status code = %s", st.Code())
	}

	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = d
		}
	}
	if localized == nil {
		t.Fatal("expected localized message detail")
	}
	if !strings.Contains(localized.Message, "bernd") {
		t.Fatalf("expected rendered metadata in message, got %q", localized.Message)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	st, ok := status.FromError(HandleError(errors.New("boom"), "de-DE"))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("status code = %s", st.Code())
	}
}

func TestLocalize(t *testing.T) {
	err := WithMetadata(CodeGameRoundCountInvalid, "round count is not legal",
		map[string]string{"MaxRounds": "9", "Players": "4"})

	code, msg := Localize(err, "en-US")
	if code != CodeGameRoundCountInvalid {
		t.Fatalf("code = %s", code)
	}
	if !strings.Contains(msg, "9") || !strings.Contains(msg, "4") {
		t.Fatalf("expected metadata in message, got %q", msg)
	}

	code, msg = Localize(errors.New("plain"), "")
	if code != CodeUnknown || msg == "" {
		t.Fatalf("unexpected fallback: %s %q", code, msg)
	}
}
