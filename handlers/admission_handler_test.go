package handlers

import (
	"testing"

	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

func strptr(s string) *string { return &s }

func TestPatchCannotSelectAccepted(t *testing.T) {
	_, errCode := buildAdmissionUpdates(models.StatusSubmitted, admissionPatch{
		Status: strptr("accepted"),
	})
	if errCode != "ACCEPT_VIA_ACTION" {
		t.Fatalf("errCode = %q, want ACCEPT_VIA_ACTION", errCode)
	}
}

func TestPatchRejectsUnknownStatus(t *testing.T) {
	_, errCode := buildAdmissionUpdates(models.StatusSubmitted, admissionPatch{
		Status: strptr("pending"),
	})
	if errCode != "INVALID_STATUS" {
		t.Fatalf("errCode = %q, want INVALID_STATUS", errCode)
	}
}

func TestPatchLeavesRejectionReasonAlone(t *testing.T) {
	// moving away from rejected without sending a reason must not touch
	// the stored reason
	updates, errCode := buildAdmissionUpdates(models.StatusRejected, admissionPatch{
		Status: strptr(models.StatusUnderReview),
	})
	if errCode != "" {
		t.Fatalf("unexpected error %q", errCode)
	}
	if _, touched := updates["rejection_reason"]; touched {
		t.Fatalf("rejection_reason clobbered: %v", updates)
	}
	if updates["status"] != models.StatusUnderReview {
		t.Fatalf("status update missing: %v", updates)
	}
}

func TestPatchAppliesSentFieldsOnly(t *testing.T) {
	updates, errCode := buildAdmissionUpdates(models.StatusSubmitted, admissionPatch{
		Notes:           strptr("  called the guardian  "),
		RejectionReason: strptr("incomplete documents"),
	})
	if errCode != "" {
		t.Fatalf("unexpected error %q", errCode)
	}
	if len(updates) != 2 {
		t.Fatalf("updates = %v, want notes + rejection_reason only", updates)
	}
	if updates["notes"] != "called the guardian" {
		t.Fatalf("notes not trimmed: %q", updates["notes"])
	}
}

func TestPatchEmptyBodyIsNoop(t *testing.T) {
	updates, errCode := buildAdmissionUpdates(models.StatusSubmitted, admissionPatch{})
	if errCode != "" || len(updates) != 0 {
		t.Fatalf("empty patch produced %v / %q", updates, errCode)
	}
}
