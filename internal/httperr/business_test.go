package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_unavailable")

	if !IsBusiness(err, "slot_unavailable") {
		t.Error("expected match on own code")
	}
	if IsBusiness(err, "day_not_served") {
		t.Error("must not match a different code")
	}
	if IsBusiness(nil, "slot_unavailable") {
		t.Error("nil is not a business error")
	}
	if IsBusiness(fmt.Errorf("boom"), "slot_unavailable") {
		t.Error("plain errors are not business errors")
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("reservando: %w", ErrBusiness("patient_double_booking"))

	if !IsBusiness(err, "patient_double_booking") {
		t.Error("expected match through wrapping")
	}
	if got := BusinessCode(err); got != "patient_double_booking" {
		t.Errorf("BusinessCode = %q", got)
	}
}

func TestBusinessCode_NonBusiness(t *testing.T) {
	if got := BusinessCode(fmt.Errorf("boom")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
}

func TestIsExclusionConflict(t *testing.T) {
	if !IsExclusionConflict(&pgconn.PgError{Code: "23P01"}) {
		t.Error("exclusion violation must be a conflict")
	}
	if !IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation must be a conflict")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a slot conflict")
	}
	if IsExclusionConflict(fmt.Errorf("boom")) {
		t.Error("plain errors are not conflicts")
	}
	if IsExclusionConflict(nil) {
		t.Error("nil is not a conflict")
	}
}

func TestIsExclusionConflict_Wrapped(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	if !IsExclusionConflict(err) {
		t.Error("expected match through wrapping")
	}
}
