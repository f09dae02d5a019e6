package handler

import (
	"context"
	"slices"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
)

type stubCandidateUseCase struct {
	registerInput candidate.RegisterCandidateInput
	registerOut   *candidate.Candidate
	registerErr   error

	getInput candidate.GetCandidateInput
	getOut   *candidate.Candidate
	getErr   error

	listInput candidate.ListCandidatesInput
	listOut   *candidate.ListCandidatesResult
	listErr   error

	updateInput candidate.UpdateProfileInput
	updateOut   *candidate.Candidate
	updateErr   error
}

func (s *stubCandidateUseCase) RegisterCandidate(ctx context.Context, in candidate.RegisterCandidateInput) (*candidate.Candidate, error) {
	s.registerInput = in
	return s.registerOut, s.registerErr
}

func (s *stubCandidateUseCase) GetCandidate(ctx context.Context, in candidate.GetCandidateInput) (*candidate.Candidate, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubCandidateUseCase) ListCandidates(ctx context.Context, in candidate.ListCandidatesInput) (*candidate.ListCandidatesResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubCandidateUseCase) UpdateProfile(ctx context.Context, in candidate.UpdateProfileInput) (*candidate.Candidate, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func actorContext(actor string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(staffingv1.ActorMetadataKey, actor))
}

func TestCandidateGrpcHandler_RegisterCandidate(t *testing.T) {
	t.Parallel()

	birth := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	stub := &stubCandidateUseCase{
		registerOut: &candidate.Candidate{
			ID:        "cand-1",
			Profile:   candidate.Profile{FullName: "Nguyen Van A", BirthDate: &birth},
			Status:    candidate.StatusRegistered,
			CreatedBy: "staff-1",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	h := NewCandidateGrpcHandler(stub)

	resp, err := h.RegisterCandidate(actorContext("staff-1"), &staffingv1.RegisterCandidateRequest{
		Profile: staffingv1.CandidateProfile{FullName: "Nguyen Van A", BirthDate: "1995-04-12"},
	})
	if err != nil {
		t.Fatalf("RegisterCandidate returned error: %v", err)
	}

	if stub.registerInput.Actor != "staff-1" {
		t.Fatalf("expected actor from metadata, got %q", stub.registerInput.Actor)
	}
	if stub.registerInput.Profile.BirthDate == nil || !stub.registerInput.Profile.BirthDate.Equal(birth) {
		t.Fatalf("expected parsed birth date, got %v", stub.registerInput.Profile.BirthDate)
	}
	if resp.Candidate.ID != "cand-1" || resp.Candidate.Status != "registered" || resp.Candidate.Profile.BirthDate != "1995-04-12" {
		t.Fatalf("unexpected response: %+v", resp.Candidate)
	}
}

func TestCandidateGrpcHandler_RegisterCandidate_RequiresActor(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{}
	h := NewCandidateGrpcHandler(stub)

	_, err := h.RegisterCandidate(context.Background(), &staffingv1.RegisterCandidateRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if stub.registerInput.Actor != "" {
		t.Fatalf("use case must not be called without an actor")
	}
}

func TestCandidateGrpcHandler_RegisterCandidate_InvalidDate(t *testing.T) {
	t.Parallel()

	h := NewCandidateGrpcHandler(&stubCandidateUseCase{})

	_, err := h.RegisterCandidate(actorContext("staff-1"), &staffingv1.RegisterCandidateRequest{
		Profile: staffingv1.CandidateProfile{FullName: "A", BirthDate: "12/04/1995"},
	})
	st := status.Convert(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}

	var found bool
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				if v.GetField() == "profile.birth_date" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected profile.birth_date violation, got %v", st.Details())
	}
}

func TestCandidateGrpcHandler_UpdateProfile_ClearsDates(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{updateOut: &candidate.Candidate{ID: "cand-1"}}
	h := NewCandidateGrpcHandler(stub)

	phone := "090-0000-0000"
	_, err := h.UpdateProfile(actorContext("staff-1"), &staffingv1.UpdateProfileRequest{
		ID: "cand-1",
		Patch: staffingv1.CandidateProfilePatch{
			Phone:       &phone,
			ClearFields: []string{"visa_expiry"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	patch := stub.updateInput.Patch
	if patch.Phone == nil || *patch.Phone != phone {
		t.Fatalf("expected phone to be passed through, got %v", patch.Phone)
	}
	if !patch.VisaExpirySet || patch.VisaExpiry != nil {
		t.Fatalf("expected visa_expiry to be cleared, got set=%v value=%v", patch.VisaExpirySet, patch.VisaExpiry)
	}
	if patch.BirthDateSet {
		t.Fatalf("birth_date must be left untouched")
	}
}

func TestCandidateGrpcHandler_ListCandidates(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{listOut: &candidate.ListCandidatesResult{
		Candidates:    []*candidate.Candidate{{ID: "cand-1"}, {ID: "cand-2"}},
		NextPageToken: "2",
	}}
	h := NewCandidateGrpcHandler(stub)

	resp, err := h.ListCandidates(context.Background(), &staffingv1.ListCandidatesRequest{PageSize: 2, Status: "accepted", Search: "NGUYEN"})
	if err != nil {
		t.Fatalf("ListCandidates returned error: %v", err)
	}
	if stub.listInput.Status == nil || *stub.listInput.Status != candidate.StatusAccepted || stub.listInput.PageSize != 2 ||
		stub.listInput.Search == nil || *stub.listInput.Search != "NGUYEN" {
		t.Fatalf("unexpected list input: %+v", stub.listInput)
	}
	if len(resp.Candidates) != 2 || resp.NextPageToken != "2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCandidateGrpcHandler_GetCandidate_NotFound(t *testing.T) {
	t.Parallel()

	h := NewCandidateGrpcHandler(&stubCandidateUseCase{getErr: candidate.ErrCandidateNotFound})

	_, err := h.GetCandidate(context.Background(), &staffingv1.GetCandidateRequest{ID: "00000000-0000-0000-0000-000000000000"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestCandidateGrpcHandler_GetCandidate_AllowedTransitions(t *testing.T) {
	t.Parallel()

	h := NewCandidateGrpcHandler(&stubCandidateUseCase{getOut: &candidate.Candidate{ID: "cand-1", Status: candidate.StatusProcessing}})

	resp, err := h.GetCandidate(context.Background(), &staffingv1.GetCandidateRequest{ID: "cand-1"})
	if err != nil {
		t.Fatalf("GetCandidate returned error: %v", err)
	}
	if got, want := resp.Candidate.AllowedTransitions, []string{"hire", "reopen"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
