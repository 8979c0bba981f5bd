package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"coletaverde/internal/adapter/persistence/memory"
	"coletaverde/internal/domain/entities"
	"coletaverde/internal/infrastructure/notification"
	"coletaverde/internal/usecase/interfaces"
	mock_interfaces "coletaverde/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

const (
	authorID    int64 = 1
	employeeID  int64 = 2
	requesterID int64 = 3
	adminID     int64 = 4
	otherEmpID  int64 = 5
)

type solicitationFixture struct {
	uc       *SolicitationUseCase
	repo     *memory.SolicitationRepository
	notifier *notification.LocalNotifier
	now      time.Time
}

func testAddress(i int) entities.Address {
	return entities.Address{
		CEP:          fmt.Sprintf("0100%04d", i),
		Street:       "Praça da Sé",
		Number:       fmt.Sprintf("%d", 100+i),
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
	}
}

func newSolicitationFixture(t *testing.T) *solicitationFixture {
	t.Helper()
	logger, _ := test.NewNullLogger()
	users := memory.NewUserRepository(
		entities.User{ID: authorID, Name: "author", Role: entities.RoleEnterprise, Addresses: []entities.Address{testAddress(0), testAddress(1), testAddress(2), testAddress(3)}},
		entities.User{ID: employeeID, Name: "employee", Role: entities.RoleEmployee},
		entities.User{ID: requesterID, Name: "requester", Role: entities.RoleUser, Addresses: []entities.Address{testAddress(10)}},
		entities.User{ID: adminID, Name: "admin", Role: entities.RoleAdmin, Addresses: []entities.Address{testAddress(20)}},
		entities.User{ID: otherEmpID, Name: "other", Role: entities.RoleEmployee},
	)
	f := &solicitationFixture{
		repo:     memory.NewSolicitationRepository(),
		notifier: notification.NewLocalNotifier(),
		now:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewSolicitationUseCase(f.repo, users, memory.NewSequence(), f.notifier, logger,
		WithClock(func() time.Time { return f.now }))
	return f
}

func (f *solicitationFixture) input(addressIndex int) CreateSolicitationInput {
	value := decimal.NewFromInt(50)
	desired := f.now.Add(24 * time.Hour)
	return CreateSolicitationInput{
		AuthorID:       authorID,
		Type:           entities.SolicitationTypeRecycle,
		AddressIndex:   &addressIndex,
		Description:    "test",
		SuggestedValue: &value,
		DesiredDate:    &desired,
	}
}

func (f *solicitationFixture) create(t *testing.T, addressIndex int) entities.Solicitation {
	t.Helper()
	s, err := f.uc.Create(context.Background(), f.input(addressIndex))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return s
}

// seed stores a record directly so tests can start from any progress value.
func (f *solicitationFixture) seed(t *testing.T, id int64, progress entities.Progress) entities.Solicitation {
	t.Helper()
	s := entities.Solicitation{
		ID:             id,
		AuthorID:       authorID,
		Progress:       progress,
		Type:           entities.SolicitationTypeRubble,
		Address:        testAddress(int(100 + id)),
		Description:    "seeded",
		SuggestedValue: decimal.NewFromInt(10),
		Consent:        []int64{},
		DesiredDate:    f.now.Add(48 * time.Hour),
		Expiration:     f.now.Add(24 * time.Hour),
		CreatedAt:      f.now,
	}
	if progress != entities.ProgressCreated && progress != entities.ProgressExpired {
		emp := employeeID
		s.EmployeeID = &emp
		s.Accepted = true
	}
	created, err := f.repo.Create(context.Background(), s)
	if err != nil || created.ID == 0 {
		t.Fatalf("seed %d: %v", id, err)
	}
	return created
}

func assertInvariants(t *testing.T, s entities.Solicitation) {
	t.Helper()
	if len(s.Consent) > 2 {
		t.Fatalf("consent larger than two parties: %v", s.Consent)
	}
	for _, id := range s.Consent {
		if !s.IsParty(id) {
			t.Fatalf("consent contains outsider %d", id)
		}
	}
	if (s.FinalValue != nil) != s.ConsentComplete() {
		t.Fatalf("finalValue=%v but consent=%v", s.FinalValue, s.Consent)
	}
	switch s.Progress {
	case entities.ProgressAccepted, entities.ProgressInProgress, entities.ProgressFinished:
		if s.EmployeeID == nil {
			t.Fatalf("progress %s without employee", s.Progress)
		}
	case entities.ProgressCreated, entities.ProgressExpired:
		if s.EmployeeID != nil {
			t.Fatalf("progress %s with employee", s.Progress)
		}
	}
}

func TestSolicitationUseCase_NegotiationScenario(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()

	s := f.create(t, 0)
	if s.Progress != entities.ProgressCreated || s.Accepted || len(s.Consent) != 0 {
		t.Fatalf("unexpected created solicitation: %+v", s)
	}
	if !s.Expiration.Equal(f.now.Add(24 * time.Hour)) {
		t.Fatalf("expected expiration one day after creation, got %s", s.Expiration)
	}
	if s.Address != testAddress(0) {
		t.Fatalf("address not copied from author: %+v", s.Address)
	}
	assertInvariants(t, s)

	s, err := f.uc.Accept(ctx, s.ID, employeeID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !s.Accepted || s.EmployeeID == nil || *s.EmployeeID != employeeID || s.Progress != entities.ProgressAccepted {
		t.Fatalf("unexpected accepted solicitation: %+v", s)
	}
	assertInvariants(t, s)

	if _, err := f.uc.Accept(ctx, s.ID, otherEmpID); !errors.Is(err, ErrSolicitationAlreadyAccepted) {
		t.Fatalf("expected ErrSolicitationAlreadyAccepted, got %v", err)
	}

	s, err = f.uc.SuggestNewValue(ctx, s.ID, authorID, decimal.NewFromInt(60))
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(s.Consent) != 0 || !s.SuggestedValue.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("unexpected after suggest: %+v", s)
	}

	s, err = f.uc.ConsentFinalValue(ctx, s.ID, authorID)
	if err != nil {
		t.Fatalf("author consent: %v", err)
	}
	if len(s.Consent) != 1 || s.Consent[0] != authorID || s.FinalValue != nil {
		t.Fatalf("unexpected after author consent: %+v", s)
	}
	assertInvariants(t, s)

	if _, err := f.uc.ConsentFinalValue(ctx, s.ID, authorID); !errors.Is(err, ErrAlreadyConsented) {
		t.Fatalf("expected ErrAlreadyConsented, got %v", err)
	}

	s, err = f.uc.ConsentFinalValue(ctx, s.ID, employeeID)
	if err != nil {
		t.Fatalf("employee consent: %v", err)
	}
	if s.FinalValue == nil || !s.FinalValue.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected final value 60, got %v", s.FinalValue)
	}
	if len(s.Consent) != 2 {
		t.Fatalf("expected both consents, got %v", s.Consent)
	}
	assertInvariants(t, s)

	if _, err := f.uc.ConsentFinalValue(ctx, s.ID, authorID); !errors.Is(err, ErrFinalValueAlreadyDefined) {
		t.Fatalf("expected ErrFinalValueAlreadyDefined, got %v", err)
	}
	if _, err := f.uc.SuggestNewValue(ctx, s.ID, employeeID, decimal.NewFromInt(70)); !errors.Is(err, ErrFinalValueAlreadyDefined) {
		t.Fatalf("expected suggest after final value to conflict, got %v", err)
	}
	if _, err := f.uc.Finish(ctx, s.ID, employeeID); !errors.Is(err, ErrCannotFinish) {
		t.Fatalf("expected finish before work started to conflict, got %v", err)
	}

	s, err = f.uc.StartWork(ctx, s.ID, authorID)
	if err != nil {
		t.Fatalf("start work: %v", err)
	}
	if s.Progress != entities.ProgressInProgress {
		t.Fatalf("expected inProgress, got %s", s.Progress)
	}

	if _, err := f.uc.Finish(ctx, s.ID, authorID); !errors.Is(err, ErrSolicitationNotFound) {
		t.Fatalf("expected author finish to be not found, got %v", err)
	}
	s, err = f.uc.Finish(ctx, s.ID, employeeID)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if s.Progress != entities.ProgressFinished || s.FinishedAt == nil || !s.FinishedAt.Equal(f.now) {
		t.Fatalf("unexpected finished solicitation: %+v", s)
	}
	assertInvariants(t, s)

	if _, err := f.uc.Cancel(ctx, s.ID, authorID); !errors.Is(err, ErrCannotCancel) {
		t.Fatalf("expected cancel after finish to conflict, got %v", err)
	}
}

func TestSolicitationUseCase_SuggestResetsConsent(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()
	s := f.create(t, 0)
	s, _ = f.uc.Accept(ctx, s.ID, employeeID)

	s, err := f.uc.ConsentFinalValue(ctx, s.ID, employeeID)
	if err != nil || len(s.Consent) != 1 {
		t.Fatalf("consent: %v %v", err, s.Consent)
	}
	s, err = f.uc.SuggestNewValue(ctx, s.ID, authorID, decimal.RequireFromString("45.5"))
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(s.Consent) != 0 {
		t.Fatalf("expected consent reset, got %v", s.Consent)
	}
	assertInvariants(t, s)
}

func TestSolicitationUseCase_Create_RoundsSuggestedValue(t *testing.T) {
	f := newSolicitationFixture(t)
	in := f.input(0)
	value := decimal.RequireFromString("19.995")
	in.SuggestedValue = &value

	s, err := f.uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.SuggestedValue.StringFixed(2) != "20.00" {
		t.Fatalf("expected 20.00, got %s", s.SuggestedValue.StringFixed(2))
	}
	stored, _ := f.repo.GetByID(context.Background(), s.ID)
	if !stored.SuggestedValue.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected persisted 20.00, got %s", stored.SuggestedValue)
	}
}

func TestSolicitationUseCase_Create_Validation(t *testing.T) {
	zero := decimal.Zero
	negative := decimal.NewFromInt(-5)

	cases := []struct {
		name   string
		mutate func(f *solicitationFixture, in *CreateSolicitationInput)
		want   error
	}{
		{"missing type", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.Type = "" }, ErrInvalidSolicitationType},
		{"unknown type", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.Type = "plutonium" }, ErrInvalidSolicitationType},
		{"missing address index", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.AddressIndex = nil }, ErrMissingAddressIndex},
		{"blank description", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.Description = "   " }, ErrMissingDescription},
		{"description too long", func(_ *solicitationFixture, in *CreateSolicitationInput) {
			in.Description = strings.Repeat("a", entities.MaxDescriptionLength+1)
		}, ErrDescriptionTooLong},
		{"missing value", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.SuggestedValue = nil }, ErrInvalidSuggestedValue},
		{"zero value", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.SuggestedValue = &zero }, ErrInvalidSuggestedValue},
		{"negative value", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.SuggestedValue = &negative }, ErrInvalidSuggestedValue},
		{"missing desired date", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.DesiredDate = nil }, ErrMissingDesiredDate},
		{"desired date now", func(f *solicitationFixture, in *CreateSolicitationInput) {
			d := f.now
			in.DesiredDate = &d
		}, ErrDesiredDateNotInFuture},
		{"address index out of range", func(_ *solicitationFixture, in *CreateSolicitationInput) {
			idx := 9
			in.AddressIndex = &idx
		}, ErrAddressNotFound},
		{"negative address index", func(_ *solicitationFixture, in *CreateSolicitationInput) {
			idx := -1
			in.AddressIndex = &idx
		}, ErrAddressNotFound},
		{"user role cannot create", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.AuthorID = requesterID }, ErrCreateForbidden},
		{"unknown author", func(_ *solicitationFixture, in *CreateSolicitationInput) { in.AuthorID = 99 }, ErrAuthorNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSolicitationFixture(t)
			in := f.input(0)
			tc.mutate(f, &in)
			_, err := f.uc.Create(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("description at the limit is accepted", func(t *testing.T) {
		f := newSolicitationFixture(t)
		in := f.input(0)
		in.Description = strings.Repeat("é", entities.MaxDescriptionLength)
		if _, err := f.uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin can create", func(t *testing.T) {
		f := newSolicitationFixture(t)
		in := f.input(0)
		in.AuthorID = adminID
		s, err := f.uc.Create(context.Background(), in)
		if err != nil || s.AuthorID != adminID {
			t.Fatalf("unexpected result err=%v s=%+v", err, s)
		}
	})
}

func TestSolicitationUseCase_Create_OneOpenPerAddress(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()

	first := f.create(t, 0)
	if _, err := f.uc.Create(ctx, f.input(0)); !errors.Is(err, ErrOpenSolicitationAtAddress) {
		t.Fatalf("expected ErrOpenSolicitationAtAddress, got %v", err)
	}
	if !errors.Is(ErrOpenSolicitationAtAddress, ErrConflict) {
		t.Fatalf("open address must be a conflict")
	}
	if _, err := f.uc.Create(ctx, f.input(1)); err != nil {
		t.Fatalf("other address should be free: %v", err)
	}

	if _, err := f.uc.Cancel(ctx, first.ID, authorID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := f.uc.Create(ctx, f.input(0)); err != nil {
		t.Fatalf("address should be free after cancel: %v", err)
	}
}

func TestSolicitationUseCase_Accept_RejectedUnlessCreated(t *testing.T) {
	cases := []struct {
		progress entities.Progress
		want     error
	}{
		{entities.ProgressAccepted, ErrSolicitationAlreadyAccepted},
		{entities.ProgressInProgress, ErrSolicitationAlreadyAccepted},
		{entities.ProgressFinished, ErrSolicitationNotOpen},
		{entities.ProgressCancelled, ErrSolicitationNotOpen},
		{entities.ProgressExpired, ErrSolicitationNotOpen},
	}
	for i, tc := range cases {
		t.Run(string(tc.progress), func(t *testing.T) {
			f := newSolicitationFixture(t)
			s := f.seed(t, int64(i+1), tc.progress)
			_, err := f.uc.Accept(context.Background(), s.ID, otherEmpID)
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrConflict) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		f := newSolicitationFixture(t)
		if _, err := f.uc.Accept(context.Background(), 42, employeeID); !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})

	t.Run("self acceptance", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.create(t, 0)
		if _, err := f.uc.Accept(context.Background(), s.ID, authorID); !errors.Is(err, ErrSelfAcceptance) {
			t.Fatalf("expected ErrSelfAcceptance, got %v", err)
		}
	})

	t.Run("non employee", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.create(t, 0)
		if _, err := f.uc.Accept(context.Background(), s.ID, requesterID); !errors.Is(err, ErrAcceptForbidden) {
			t.Fatalf("expected ErrAcceptForbidden, got %v", err)
		}
	})
}

func TestSolicitationUseCase_Cancel(t *testing.T) {
	cases := []struct {
		progress entities.Progress
		allowed  bool
	}{
		{entities.ProgressCreated, true},
		{entities.ProgressAccepted, true},
		{entities.ProgressInProgress, true},
		{entities.ProgressFinished, false},
		{entities.ProgressCancelled, false},
		{entities.ProgressExpired, false},
	}
	for i, tc := range cases {
		t.Run(string(tc.progress), func(t *testing.T) {
			f := newSolicitationFixture(t)
			s := f.seed(t, int64(i+1), tc.progress)
			got, err := f.uc.Cancel(context.Background(), s.ID, authorID)
			if tc.allowed {
				if err != nil || got.Progress != entities.ProgressCancelled {
					t.Fatalf("expected cancel, got err=%v progress=%s", err, got.Progress)
				}
				return
			}
			if !errors.Is(err, ErrCannotCancel) {
				t.Fatalf("expected ErrCannotCancel, got %v", err)
			}
		})
	}

	t.Run("cancelled after acceptance keeps the employee", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.seed(t, 1, entities.ProgressAccepted)
		s.Consent = []int64{employeeID}
		if _, err := f.repo.Update(context.Background(), s); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := f.uc.Cancel(context.Background(), s.ID, authorID)
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if got.EmployeeID == nil || *got.EmployeeID != employeeID {
			t.Fatalf("employee must be kept on a cancelled record, got %v", got.EmployeeID)
		}
		assertInvariants(t, got)
	})

	t.Run("requester is not the author", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.create(t, 0)
		if _, err := f.uc.Cancel(context.Background(), s.ID, employeeID); !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})
}

func TestSolicitationUseCase_NegotiationGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("suggest before accept", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.create(t, 0)
		if _, err := f.uc.SuggestNewValue(ctx, s.ID, authorID, decimal.NewFromInt(10)); !errors.Is(err, ErrSolicitationNotAccepted) {
			t.Fatalf("expected ErrSolicitationNotAccepted, got %v", err)
		}
	})

	t.Run("suggest non positive", func(t *testing.T) {
		f := newSolicitationFixture(t)
		if _, err := f.uc.SuggestNewValue(ctx, 1, authorID, decimal.Zero); !errors.Is(err, ErrInvalidSuggestedValue) {
			t.Fatalf("expected ErrInvalidSuggestedValue, got %v", err)
		}
	})

	t.Run("suggest by outsider", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.seed(t, 1, entities.ProgressAccepted)
		if _, err := f.uc.SuggestNewValue(ctx, s.ID, otherEmpID, decimal.NewFromInt(10)); !errors.Is(err, ErrNotNegotiationParty) {
			t.Fatalf("expected ErrNotNegotiationParty, got %v", err)
		}
	})

	t.Run("suggest rounds value", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.seed(t, 1, entities.ProgressAccepted)
		got, err := f.uc.SuggestNewValue(ctx, s.ID, employeeID, decimal.RequireFromString("10.005"))
		if err != nil || got.SuggestedValue.StringFixed(2) != "10.01" {
			t.Fatalf("unexpected err=%v value=%s", err, got.SuggestedValue)
		}
	})

	t.Run("consent before accept", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.create(t, 0)
		if _, err := f.uc.ConsentFinalValue(ctx, s.ID, authorID); !errors.Is(err, ErrSolicitationNotAccepted) {
			t.Fatalf("expected ErrSolicitationNotAccepted, got %v", err)
		}
	})

	t.Run("consent by outsider", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.seed(t, 1, entities.ProgressAccepted)
		if _, err := f.uc.ConsentFinalValue(ctx, s.ID, requesterID); !errors.Is(err, ErrNotNegotiationParty) {
			t.Fatalf("expected ErrNotNegotiationParty, got %v", err)
		}
	})

	t.Run("consent unknown", func(t *testing.T) {
		f := newSolicitationFixture(t)
		if _, err := f.uc.ConsentFinalValue(ctx, 7, authorID); !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})

	t.Run("start work without final value", func(t *testing.T) {
		f := newSolicitationFixture(t)
		s := f.seed(t, 1, entities.ProgressAccepted)
		if _, err := f.uc.StartWork(ctx, s.ID, authorID); !errors.Is(err, ErrCannotStartWork) {
			t.Fatalf("expected ErrCannotStartWork, got %v", err)
		}
	})
}

func TestSolicitationUseCase_SweepExpired(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()

	stale := f.create(t, 0)
	accepted := f.create(t, 1)
	if _, err := f.uc.Accept(ctx, accepted.ID, employeeID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	f.now = f.now.Add(2 * time.Hour)
	fresh := f.create(t, 2)

	f.now = stale.Expiration.Add(time.Minute)
	n, err := f.uc.SweepExpired(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected one expired, got n=%d err=%v", n, err)
	}

	got, _ := f.repo.GetByID(ctx, stale.ID)
	if got.Progress != entities.ProgressExpired {
		t.Fatalf("expected expired, got %s", got.Progress)
	}
	assertInvariants(t, got)
	if got, _ := f.repo.GetByID(ctx, accepted.ID); got.Progress != entities.ProgressAccepted {
		t.Fatalf("accepted solicitation must not expire, got %s", got.Progress)
	}
	if got, _ := f.repo.GetByID(ctx, fresh.ID); got.Progress != entities.ProgressCreated {
		t.Fatalf("fresh solicitation must not expire, got %s", got.Progress)
	}

	if _, err := f.uc.Accept(ctx, stale.ID, employeeID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected accept on expired to conflict, got %v", err)
	}

	n, err = f.uc.SweepExpired(ctx)
	if err != nil || n != 0 {
		t.Fatalf("second sweep should be a no-op, got n=%d err=%v", n, err)
	}

	if _, err := f.uc.Create(ctx, f.input(0)); err != nil {
		t.Fatalf("expired address should be free: %v", err)
	}
}

func TestSolicitationUseCase_List(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		f.create(t, i)
	}
	adminInput := f.input(0)
	adminInput.AuthorID = adminID
	if _, err := f.uc.Create(ctx, adminInput); err != nil {
		t.Fatalf("admin create: %v", err)
	}

	t.Run("invalid pagination", func(t *testing.T) {
		for _, p := range [][2]int{{0, 5}, {1, 25}, {1, 20}, {1, 0}, {-1, 5}} {
			if _, err := f.uc.List(ctx, entities.Actor{ID: employeeID, Role: entities.RoleEmployee}, ListScopeAll, p[0], p[1]); !errors.Is(err, ErrInvalidPagination) {
				t.Fatalf("page=%d limit=%d: expected ErrInvalidPagination, got %v", p[0], p[1], err)
			}
		}
	})

	t.Run("employee sees all in insertion order", func(t *testing.T) {
		items, err := f.uc.List(ctx, entities.Actor{ID: employeeID, Role: entities.RoleEmployee}, ListScopeAll, 1, 3)
		if err != nil || len(items) != 3 {
			t.Fatalf("unexpected err=%v len=%d", err, len(items))
		}
		for i, s := range items {
			if s.ID != int64(i+1) {
				t.Fatalf("expected id %d at %d, got %d", i+1, i, s.ID)
			}
		}
		page2, _ := f.uc.List(ctx, entities.Actor{ID: employeeID, Role: entities.RoleEmployee}, ListScopeAll, 2, 3)
		if len(page2) != 2 || page2[0].ID != 4 || page2[1].ID != 5 {
			t.Fatalf("unexpected second page: %+v", page2)
		}
	})

	t.Run("enterprise sees only own", func(t *testing.T) {
		items, err := f.uc.List(ctx, entities.Actor{ID: authorID, Role: entities.RoleEnterprise}, ListScopeAll, 1, 10)
		if err != nil || len(items) != 4 {
			t.Fatalf("unexpected err=%v len=%d", err, len(items))
		}
	})

	t.Run("mine scope for admin", func(t *testing.T) {
		items, err := f.uc.List(ctx, entities.Actor{ID: adminID, Role: entities.RoleAdmin}, ListScopeMine, 1, 10)
		if err != nil || len(items) != 1 || items[0].AuthorID != adminID {
			t.Fatalf("unexpected err=%v items=%+v", err, items)
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		items, err := f.uc.List(ctx, entities.Actor{ID: adminID, Role: entities.RoleAdmin}, ListScopeAll, 9, 10)
		if err != nil || items == nil || len(items) != 0 {
			t.Fatalf("expected empty page, got err=%v items=%v", err, items)
		}
	})
}

func TestSolicitationUseCase_GetVisibility(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()
	s := f.create(t, 0)

	if _, err := f.uc.Get(ctx, entities.Actor{ID: authorID, Role: entities.RoleEnterprise}, s.ID); err != nil {
		t.Fatalf("author get: %v", err)
	}
	if _, err := f.uc.Get(ctx, entities.Actor{ID: otherEmpID, Role: entities.RoleEmployee}, s.ID); err != nil {
		t.Fatalf("employee get: %v", err)
	}
	if _, err := f.uc.Get(ctx, entities.Actor{ID: requesterID, Role: entities.RoleUser}, s.ID); !errors.Is(err, ErrSolicitationNotFound) {
		t.Fatalf("expected hidden for other users, got %v", err)
	}
	if _, err := f.uc.GetMine(ctx, entities.Actor{ID: adminID, Role: entities.RoleAdmin}, s.ID); !errors.Is(err, ErrSolicitationNotFound) {
		t.Fatalf("GetMine must be author only, got %v", err)
	}
	if _, err := f.uc.Get(ctx, entities.Actor{ID: authorID}, 0); !errors.Is(err, ErrInvalidSolicitationID) {
		t.Fatalf("expected ErrInvalidSolicitationID, got %v", err)
	}
}

func TestSolicitationUseCase_PublishesEvents(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()

	authorEvents, cancelAuthor, _ := f.notifier.Subscribe(ctx, authorID)
	defer cancelAuthor()
	employeeEvents, cancelEmployee, _ := f.notifier.Subscribe(ctx, employeeID)
	defer cancelEmployee()

	s := f.create(t, 0)
	if ev := <-authorEvents; ev.Type != entities.EventSolicitationCreated {
		t.Fatalf("expected created event, got %s", ev.Type)
	}
	if _, err := f.uc.Accept(ctx, s.ID, employeeID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if ev := <-authorEvents; ev.Type != entities.EventSolicitationAccepted {
		t.Fatalf("expected accepted event, got %s", ev.Type)
	}
	if _, err := f.uc.SuggestNewValue(ctx, s.ID, authorID, decimal.NewFromInt(80)); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	ev := <-employeeEvents
	if ev.Type != entities.EventSolicitationValueSuggested {
		t.Fatalf("expected value suggested event, got %s", ev.Type)
	}
	if data, ok := ev.Data.(entities.Solicitation); !ok || !data.SuggestedValue.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unexpected event payload: %+v", ev.Data)
	}
}

func TestSolicitationUseCase_StoreFailures(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctx := context.Background()
	emp := employeeID
	accepted := entities.Solicitation{
		ID: 1, AuthorID: authorID, EmployeeID: &emp, Accepted: true,
		Progress: entities.ProgressAccepted, SuggestedValue: decimal.NewFromInt(5), Consent: []int64{}, Version: 3,
	}

	t.Run("concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, nil, nil, logger)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(accepted, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Solicitation{})).DoAndReturn(
			func(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
				if s.Version != 3 {
					t.Fatalf("update must carry the read version, got %d", s.Version)
				}
				return entities.Solicitation{}, nil
			},
		)

		_, err := uc.ConsentFinalValue(ctx, 1, authorID)
		if !errors.Is(err, ErrSolicitationModified) || KindOf(err) != KindConflict {
			t.Fatalf("expected ErrSolicitationModified, got %v", err)
		}
	})

	t.Run("repository error propagates as internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, nil, nil, logger)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Solicitation{}, errors.New("db"))

		_, err := uc.Cancel(ctx, 1, authorID)
		if err == nil || err.Error() != "db" || KindOf(err) != KindInternal {
			t.Fatalf("expected internal db error, got %v", err)
		}
	})

	t.Run("publish failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewSolicitationUseCase(repo, nil, nil, notifier, logger)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(accepted, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
				s.Version++
				return s, nil
			},
		)
		notifier.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)

		got, err := uc.Cancel(ctx, 1, authorID)
		if err != nil || got.Progress != entities.ProgressCancelled {
			t.Fatalf("unexpected err=%v progress=%s", err, got.Progress)
		}
	})

	t.Run("sweep skips records changed meanwhile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		uc := NewSolicitationUseCase(repo, nil, nil, nil, logger, WithClock(func() time.Time { return now }))

		stale := []entities.Solicitation{
			{ID: 1, Progress: entities.ProgressCreated, Expiration: now.Add(-time.Hour)},
			{ID: 2, Progress: entities.ProgressCreated, Expiration: now.Add(-time.Hour)},
		}
		repo.EXPECT().ListExpirable(gomock.Any(), now).Return(stale, nil)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Solicitation{}, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
					if s.Progress != entities.ProgressExpired {
						t.Fatalf("expected expired write, got %s", s.Progress)
					}
					return s, nil
				},
			),
		)

		n, err := uc.SweepExpired(ctx)
		if err != nil || n != 1 {
			t.Fatalf("expected one expired, got n=%d err=%v", n, err)
		}
	})
}

func TestSolicitationUseCase_CreateWithImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, _ := test.NewNullLogger()
	media := mock_interfaces.NewMockIMediaStorage(ctrl)

	users := memory.NewUserRepository(entities.User{ID: authorID, Role: entities.RoleEnterprise, Addresses: []entities.Address{testAddress(0)}})
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var seq interfaces.ISequence = memory.NewSequence()
	uc := NewSolicitationUseCase(memory.NewSolicitationRepository(), users, seq, nil, logger,
		WithClock(func() time.Time { return now }), WithMediaStorage(media))

	ref := entities.ImageRef{Path: "/media/a.jpg", ThumbnailPath: "/media/thumb_a.jpg", ContentType: "image/jpeg"}
	media.EXPECT().SaveImage(gomock.Any(), "a.jpg", "image/jpeg", []byte("img")).Return(ref, nil)

	idx := 0
	value := decimal.NewFromInt(10)
	desired := now.Add(time.Hour)
	s, err := uc.Create(context.Background(), CreateSolicitationInput{
		AuthorID:       authorID,
		Type:           entities.SolicitationTypeElectronic,
		AddressIndex:   &idx,
		Description:    "old monitors",
		SuggestedValue: &value,
		DesiredDate:    &desired,
		Image:          &ImageUpload{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("img")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Image == nil || *s.Image != ref {
		t.Fatalf("expected image ref, got %+v", s.Image)
	}
}

func TestSolicitationUseCase_Create_IDCollision(t *testing.T) {
	f := newSolicitationFixture(t)
	ctx := context.Background()
	f.seed(t, 1, entities.ProgressCancelled)

	events, cancel, _ := f.notifier.Subscribe(ctx, authorID)
	defer cancel()

	s, err := f.uc.Create(ctx, f.input(0))
	if !errors.Is(err, ErrSolicitationIDTaken) || KindOf(err) != KindConflict {
		t.Fatalf("expected ErrSolicitationIDTaken, got err=%v solicitation=%+v", err, s)
	}
	if s.ID != 0 {
		t.Fatalf("failed create must not return a record, got %+v", s)
	}
	select {
	case ev := <-events:
		t.Fatalf("failed create published %+v", ev)
	default:
	}

	again, err := f.uc.Create(ctx, f.input(0))
	if err != nil || again.ID != 2 {
		t.Fatalf("retry should take the next id, got id=%d err=%v", again.ID, err)
	}
}

func TestSolicitationUseCase_Create_DiscardsImageOnFailure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	users := memory.NewUserRepository(entities.User{ID: authorID, Role: entities.RoleEnterprise, Addresses: []entities.Address{testAddress(0)}})
	ref := entities.ImageRef{Path: "/media/a.jpg", ThumbnailPath: "/media/thumbnails/a.jpg", ContentType: "image/jpeg"}

	input := func() CreateSolicitationInput {
		idx := 0
		value := decimal.NewFromInt(10)
		desired := now.Add(time.Hour)
		return CreateSolicitationInput{
			AuthorID:       authorID,
			Type:           entities.SolicitationTypeElectronic,
			AddressIndex:   &idx,
			Description:    "old monitors",
			SuggestedValue: &value,
			DesiredDate:    &desired,
			Image:          &ImageUpload{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("img")},
		}
	}

	t.Run("store rejects the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		media := mock_interfaces.NewMockIMediaStorage(ctrl)
		repo := memory.NewSolicitationRepository()
		if _, err := repo.Create(context.Background(), entities.Solicitation{ID: 1, AuthorID: 9, Progress: entities.ProgressCancelled}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		uc := NewSolicitationUseCase(repo, users, memory.NewSequence(), nil, logger,
			WithClock(func() time.Time { return now }), WithMediaStorage(media))

		gomock.InOrder(
			media.EXPECT().SaveImage(gomock.Any(), "a.jpg", "image/jpeg", []byte("img")).Return(ref, nil),
			media.EXPECT().DeleteImage(gomock.Any(), ref).Return(nil),
		)

		if _, err := uc.Create(context.Background(), input()); !errors.Is(err, ErrSolicitationIDTaken) {
			t.Fatalf("expected ErrSolicitationIDTaken, got %v", err)
		}
	})

	t.Run("sequence failure stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		media := mock_interfaces.NewMockIMediaStorage(ctrl)
		seq := mock_interfaces.NewMockISequence(ctrl)
		uc := NewSolicitationUseCase(memory.NewSolicitationRepository(), users, seq, nil, logger,
			WithClock(func() time.Time { return now }), WithMediaStorage(media))

		seq.EXPECT().Next(gomock.Any(), "solicitation").Return(int64(0), errors.New("counter unavailable"))

		if _, err := uc.Create(context.Background(), input()); err == nil || KindOf(err) != KindInternal {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}
