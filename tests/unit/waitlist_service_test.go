package unit

import (
	"context"
	"errors"
	"testing"

	waitlistservice "clout/contexts/community/waitlist-service"
	domainerrors "clout/contexts/community/waitlist-service/domain/errors"
	httptransport "clout/contexts/community/waitlist-service/transport/http"
)

func TestWaitlistJoin(t *testing.T) {
	module := waitlistservice.NewInMemoryModule(nil)

	joined, err := module.Handler.JoinHandler(context.Background(), httptransport.JoinWaitlistRequest{
		Email: "  Fan@Example.COM ",
	})
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if joined.Entry.Email != "fan@example.com" {
		t.Fatalf("expected normalized email, got %s", joined.Entry.Email)
	}

	_, err = module.Handler.JoinHandler(context.Background(), httptransport.JoinWaitlistRequest{
		Email: "fan@example.com",
	})
	if !errors.Is(err, domainerrors.ErrAlreadyJoined) {
		t.Fatalf("expected already joined, got %v", err)
	}

	_, err = module.Handler.JoinHandler(context.Background(), httptransport.JoinWaitlistRequest{
		Email: "not-an-email",
	})
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got %v", err)
	}

	listed, err := module.Handler.ListHandler(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed.Items) != 1 {
		t.Fatalf("expected one entry, got %d", len(listed.Items))
	}
}
