package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("KnownErrNo", func(t *testing.T) {
		got := ConvertErr(ParamErr)
		if got.ErrCode != ParamErrCode {
			t.Fatalf("expected code %d, got %d", ParamErrCode, got.ErrCode)
		}
	})

	t.Run("WrappedErrNo", func(t *testing.T) {
		wrapped := errors.WithMessage(RecordNotFoundErr, "loading video")
		got := ConvertErr(wrapped)
		if got.ErrCode != RecordNotFoundCode {
			t.Fatalf("expected code %d through the wrap, got %d", RecordNotFoundCode, got.ErrCode)
		}
	})

	t.Run("UnknownError", func(t *testing.T) {
		got := ConvertErr(errors.New("disk on fire"))
		if got.ErrCode != ServiceErrCode {
			t.Fatalf("unknown errors should map to service error, got %d", got.ErrCode)
		}
		if got.ErrMsg != "disk on fire" {
			t.Fatalf("original message should survive, got %q", got.ErrMsg)
		}
	})
}

func TestWithMessage(t *testing.T) {
	custom := DuplicateRecordErr.WithMessage("Playlist already exists")
	if custom.ErrCode != DuplicateRecordCode {
		t.Fatalf("WithMessage must not change the code, got %d", custom.ErrCode)
	}
	if custom.ErrMsg != "Playlist already exists" {
		t.Fatalf("unexpected message %q", custom.ErrMsg)
	}
	if DuplicateRecordErr.ErrMsg == custom.ErrMsg {
		t.Fatal("WithMessage must not mutate the shared sentinel")
	}
}
