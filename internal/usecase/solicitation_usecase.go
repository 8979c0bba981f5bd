package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=solicitation_usecase.go -destination=../adapter/http/handlers/mocks/mock_solicitation_usecase.go -package=mocks

const solicitationSequence = "solicitation"

var tracer = otel.Tracer("coletaverde/solicitation")

var (
	ErrInvalidSolicitationType     = newError(KindValidation, "Invalid solicitation type")
	ErrMissingAddressIndex         = newError(KindValidation, "Address index is required")
	ErrMissingDescription          = newError(KindValidation, "Description is required")
	ErrDescriptionTooLong          = newError(KindValidation, "Description must have at most 3000 characters")
	ErrInvalidSuggestedValue       = newError(KindValidation, "Value must be a positive number")
	ErrMissingDesiredDate          = newError(KindValidation, "Desired date is required")
	ErrDesiredDateNotInFuture      = newError(KindValidation, "Desired date must be in the future")
	ErrInvalidPagination           = newError(KindValidation, "Page and limit must be greater than 0 and limit must be less than 20")
	ErrInvalidSolicitationID       = newError(KindValidation, "Invalid solicitation id")
	ErrSolicitationNotFound        = newError(KindNotFound, "Not found")
	ErrAuthorNotFound              = newError(KindNotFound, "User not found")
	ErrAddressNotFound             = newError(KindNotFound, "Address not found")
	ErrCreateForbidden             = newError(KindForbidden, "You don't have permission to create solicitations")
	ErrAcceptForbidden             = newError(KindForbidden, "You don't have permission to accept this solicitation")
	ErrSelfAcceptance              = newError(KindForbidden, "You can't accept your own solicitation")
	ErrNotNegotiationParty         = newError(KindForbidden, "You are not part of this solicitation")
	ErrOpenSolicitationAtAddress   = newError(KindConflict, "There is already an open solicitation for this address")
	ErrSolicitationAlreadyAccepted = newError(KindConflict, "Solicitation already accepted")
	ErrSolicitationNotOpen         = newError(KindConflict, "Solicitation is not open for acceptance")
	ErrSolicitationNotAccepted     = newError(KindConflict, "Solicitation not accepted yet")
	ErrFinalValueAlreadyDefined    = newError(KindConflict, "Final value already defined")
	ErrAlreadyConsented            = newError(KindConflict, "You already consented to this value")
	ErrCannotCancel                = newError(KindConflict, "Couldn't cancel this solicitation")
	ErrCannotFinish                = newError(KindConflict, "Couldn't finish this solicitation")
	ErrCannotStartWork             = newError(KindConflict, "Couldn't start this solicitation")
	ErrSolicitationModified        = newError(KindConflict, "Solicitation was modified concurrently, try again")
	ErrSolicitationIDTaken         = newError(KindConflict, "Couldn't store the solicitation, try again")
)

// ListScope selects which solicitations List returns.
type ListScope string

const (
	ListScopeAll  ListScope = "all"
	ListScopeMine ListScope = "mine"
)

const maxPageLimit = 20

// ImageUpload is an optional attachment sent at creation time.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CreateSolicitationInput carries the creation fields. Pointers mark fields whose
// absence must be distinguished from their zero value.
type CreateSolicitationInput struct {
	AuthorID       int64
	Type           entities.SolicitationType
	AddressIndex   *int
	Description    string
	SuggestedValue *decimal.Decimal
	DesiredDate    *time.Time
	Image          *ImageUpload
}

// ISolicitationUseCase is the solicitation engine: the sole writer of
// solicitation state.
type ISolicitationUseCase interface {
	Create(ctx context.Context, in CreateSolicitationInput) (entities.Solicitation, error)
	Accept(ctx context.Context, solicitationID, employeeID int64) (entities.Solicitation, error)
	SuggestNewValue(ctx context.Context, solicitationID, requesterID int64, value decimal.Decimal) (entities.Solicitation, error)
	ConsentFinalValue(ctx context.Context, solicitationID, requesterID int64) (entities.Solicitation, error)
	Cancel(ctx context.Context, solicitationID, requesterID int64) (entities.Solicitation, error)
	Finish(ctx context.Context, solicitationID, employeeID int64) (entities.Solicitation, error)
	StartWork(ctx context.Context, solicitationID, authorID int64) (entities.Solicitation, error)
	SweepExpired(ctx context.Context) (int, error)
	Get(ctx context.Context, actor entities.Actor, solicitationID int64) (entities.Solicitation, error)
	GetMine(ctx context.Context, actor entities.Actor, solicitationID int64) (entities.Solicitation, error)
	List(ctx context.Context, actor entities.Actor, scope ListScope, page, limit int) ([]entities.Solicitation, error)
}

type SolicitationUseCase struct {
	repo     interfaces.ISolicitationRepository
	users    interfaces.IUserRepository
	sequence interfaces.ISequence
	notifier interfaces.INotifier
	media    interfaces.IMediaStorage
	logger   logrus.FieldLogger
	now      func() time.Time
}

var _ ISolicitationUseCase = (*SolicitationUseCase)(nil)

type SolicitationOption func(*SolicitationUseCase)

// WithClock replaces time.Now, mostly for tests around expiration.
func WithClock(now func() time.Time) SolicitationOption {
	return func(u *SolicitationUseCase) { u.now = now }
}

func WithMediaStorage(media interfaces.IMediaStorage) SolicitationOption {
	return func(u *SolicitationUseCase) { u.media = media }
}

func NewSolicitationUseCase(
	repo interfaces.ISolicitationRepository,
	users interfaces.IUserRepository,
	sequence interfaces.ISequence,
	notifier interfaces.INotifier,
	logger logrus.FieldLogger,
	opts ...SolicitationOption,
) *SolicitationUseCase {
	u := &SolicitationUseCase{
		repo:     repo,
		users:    users,
		sequence: sequence,
		notifier: notifier,
		logger:   logger.WithField("module", "solicitation"),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *SolicitationUseCase) Create(ctx context.Context, in CreateSolicitationInput) (entities.Solicitation, error) {
	ctx, span := tracer.Start(ctx, "Solicitation.UseCase.Create")
	defer span.End()

	now := u.now()
	if err := validateCreateInput(in, now); err != nil {
		return entities.Solicitation{}, err
	}

	author, err := u.users.GetByID(ctx, in.AuthorID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if author.ID == 0 {
		return entities.Solicitation{}, ErrAuthorNotFound
	}

	draft := entities.Solicitation{AuthorID: author.ID}
	if !entities.CanTransition(entities.Actor{ID: author.ID, Role: author.Role}, draft, entities.ActionCreate) {
		return entities.Solicitation{}, ErrCreateForbidden
	}

	idx := *in.AddressIndex
	if idx < 0 || idx >= len(author.Addresses) {
		return entities.Solicitation{}, ErrAddressNotFound
	}
	address := author.Addresses[idx]

	open, err := u.repo.FindOpenByAddress(ctx, address.Key())
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if open.ID != 0 {
		return entities.Solicitation{}, ErrOpenSolicitationAtAddress
	}

	if in.Image != nil && u.media == nil {
		return entities.Solicitation{}, validationf("Image uploads are not enabled")
	}

	id, err := u.sequence.Next(ctx, solicitationSequence)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}

	var image *entities.ImageRef
	if in.Image != nil {
		ref, err := u.media.SaveImage(ctx, in.Image.FileName, in.Image.ContentType, in.Image.Data)
		if errors.Is(err, interfaces.ErrMediaRejected) {
			return entities.Solicitation{}, validationf("Invalid image: %s", err.Error())
		}
		if err != nil {
			return entities.Solicitation{}, fail(span, err)
		}
		image = &ref
	}

	s := entities.Solicitation{
		ID:             id,
		AuthorID:       author.ID,
		Progress:       entities.ProgressCreated,
		Accepted:       false,
		Type:           in.Type,
		Address:        address,
		Description:    strings.TrimSpace(in.Description),
		SuggestedValue: entities.RoundMoney(*in.SuggestedValue),
		Consent:        []int64{},
		DesiredDate:    in.DesiredDate.UTC(),
		Expiration:     now.Add(entities.ExpirationWindow),
		CreatedAt:      now,
		Image:          image,
	}

	created, err := u.repo.Create(ctx, s)
	if err == nil && created.ID == 0 {
		err = ErrSolicitationIDTaken
	}
	if err != nil {
		u.discardImage(ctx, image)
		return entities.Solicitation{}, fail(span, err)
	}
	span.SetAttributes(attribute.Int64("solicitation.id", created.ID))
	u.logger.WithFields(logrus.Fields{"solicitation_id": created.ID, "author_id": created.AuthorID}).Info("solicitation created")
	u.publish(ctx, entities.EventSolicitationCreated, created, created.AuthorID)
	return created, nil
}

// discardImage removes an upload whose solicitation was never stored.
func (u *SolicitationUseCase) discardImage(ctx context.Context, image *entities.ImageRef) {
	if image == nil {
		return
	}
	if err := u.media.DeleteImage(ctx, *image); err != nil {
		u.logger.WithError(err).WithField("path", image.Path).Warn("orphan upload not removed")
	}
}

func validateCreateInput(in CreateSolicitationInput, now time.Time) error {
	if in.Type == "" || !in.Type.Valid() {
		return ErrInvalidSolicitationType
	}
	if in.AddressIndex == nil {
		return ErrMissingAddressIndex
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return ErrMissingDescription
	}
	if len([]rune(description)) > entities.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if in.SuggestedValue == nil || !in.SuggestedValue.IsPositive() {
		return ErrInvalidSuggestedValue
	}
	if in.DesiredDate == nil || in.DesiredDate.IsZero() {
		return ErrMissingDesiredDate
	}
	if !in.DesiredDate.After(now) {
		return ErrDesiredDateNotInFuture
	}
	return nil
}

func (u *SolicitationUseCase) Accept(ctx context.Context, solicitationID, employeeID int64) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.Accept", solicitationID)
	defer span.End()

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	switch s.Progress {
	case entities.ProgressCreated:
	case entities.ProgressAccepted, entities.ProgressInProgress:
		return entities.Solicitation{}, ErrSolicitationAlreadyAccepted
	default:
		return entities.Solicitation{}, ErrSolicitationNotOpen
	}
	if s.IsAuthor(employeeID) {
		return entities.Solicitation{}, ErrSelfAcceptance
	}

	employee, err := u.users.GetByID(ctx, employeeID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if employee.ID == 0 || !entities.CanTransition(entities.Actor{ID: employee.ID, Role: employee.Role}, s, entities.ActionAccept) {
		return entities.Solicitation{}, ErrAcceptForbidden
	}

	s.Accepted = true
	s.EmployeeID = &employee.ID
	s.Progress = entities.ProgressAccepted

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	u.logger.WithFields(logrus.Fields{"solicitation_id": updated.ID, "employee_id": employee.ID}).Info("solicitation accepted")
	u.publish(ctx, entities.EventSolicitationAccepted, updated, updated.AuthorID)
	return updated, nil
}

func (u *SolicitationUseCase) SuggestNewValue(ctx context.Context, solicitationID, requesterID int64, value decimal.Decimal) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.SuggestNewValue", solicitationID)
	defer span.End()

	if !value.IsPositive() {
		return entities.Solicitation{}, ErrInvalidSuggestedValue
	}

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if !entities.CanTransition(entities.Actor{ID: requesterID}, s, entities.ActionSuggestValue) {
		return entities.Solicitation{}, ErrNotNegotiationParty
	}
	if s.Progress != entities.ProgressAccepted {
		return entities.Solicitation{}, ErrSolicitationNotAccepted
	}
	// Consent is reset below; a defined final value must stay backed by both consents.
	if s.FinalValue != nil {
		return entities.Solicitation{}, ErrFinalValueAlreadyDefined
	}

	s.SuggestedValue = entities.RoundMoney(value)
	s.Consent = []int64{}

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	u.logger.WithFields(logrus.Fields{
		"solicitation_id": updated.ID,
		"requester_id":    requesterID,
		"value":           updated.SuggestedValue.StringFixed(2),
	}).Info("solicitation value suggested")
	u.publish(ctx, entities.EventSolicitationValueSuggested, updated, u.counterparts(updated, requesterID)...)
	return updated, nil
}

func (u *SolicitationUseCase) ConsentFinalValue(ctx context.Context, solicitationID, requesterID int64) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.ConsentFinalValue", solicitationID)
	defer span.End()

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if s.FinalValue != nil {
		return entities.Solicitation{}, ErrFinalValueAlreadyDefined
	}
	if !s.Accepted || s.Progress != entities.ProgressAccepted {
		return entities.Solicitation{}, ErrSolicitationNotAccepted
	}
	if !entities.CanTransition(entities.Actor{ID: requesterID}, s, entities.ActionConsent) {
		return entities.Solicitation{}, ErrNotNegotiationParty
	}
	if s.HasConsented(requesterID) {
		return entities.Solicitation{}, ErrAlreadyConsented
	}

	s.Consent = append(append([]int64{}, s.Consent...), requesterID)
	if s.ConsentComplete() {
		final := s.SuggestedValue
		s.FinalValue = &final
	}

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}

	log := u.logger.WithFields(logrus.Fields{"solicitation_id": updated.ID, "requester_id": requesterID})
	if updated.FinalValue != nil {
		log.WithField("final_value", updated.FinalValue.StringFixed(2)).Info("solicitation final value defined")
		u.publish(ctx, entities.EventSolicitationFinalValueDefined, updated, u.parties(updated)...)
	} else {
		log.Info("solicitation value consented")
		u.publish(ctx, entities.EventSolicitationConsented, updated, u.counterparts(updated, requesterID)...)
	}
	return updated, nil
}

func (u *SolicitationUseCase) Cancel(ctx context.Context, solicitationID, requesterID int64) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.Cancel", solicitationID)
	defer span.End()

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if !entities.CanTransition(entities.Actor{ID: requesterID}, s, entities.ActionCancel) {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	if !entities.CanMoveTo(s.Progress, entities.ProgressCancelled) {
		return entities.Solicitation{}, ErrCannotCancel
	}

	// EmployeeID is kept: consent may still name the employee.
	s.Progress = entities.ProgressCancelled

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	u.logger.WithField("solicitation_id", updated.ID).Info("solicitation cancelled")
	u.publish(ctx, entities.EventSolicitationCancelled, updated, u.parties(updated)...)
	return updated, nil
}

func (u *SolicitationUseCase) Finish(ctx context.Context, solicitationID, employeeID int64) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.Finish", solicitationID)
	defer span.End()

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if !entities.CanTransition(entities.Actor{ID: employeeID}, s, entities.ActionFinish) {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	if s.Progress != entities.ProgressInProgress {
		return entities.Solicitation{}, ErrCannotFinish
	}

	finishedAt := u.now()
	s.Progress = entities.ProgressFinished
	s.FinishedAt = &finishedAt

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	u.logger.WithField("solicitation_id", updated.ID).Info("solicitation finished")
	u.publish(ctx, entities.EventSolicitationFinished, updated, updated.AuthorID)
	return updated, nil
}

// StartWork moves an accepted solicitation with an agreed final value to
// inProgress. The billing flow calls it once the author's payment is approved.
func (u *SolicitationUseCase) StartWork(ctx context.Context, solicitationID, authorID int64) (entities.Solicitation, error) {
	ctx, span := u.startSpan(ctx, "Solicitation.UseCase.StartWork", solicitationID)
	defer span.End()

	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	if !entities.CanTransition(entities.Actor{ID: authorID}, s, entities.ActionStartWork) {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	if s.Progress != entities.ProgressAccepted || s.FinalValue == nil {
		return entities.Solicitation{}, ErrCannotStartWork
	}

	s.Progress = entities.ProgressInProgress

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Solicitation{}, fail(span, err)
	}
	u.logger.WithField("solicitation_id", updated.ID).Info("solicitation in progress")
	u.publish(ctx, entities.EventSolicitationInProgress, updated, u.parties(updated)...)
	return updated, nil
}

// SweepExpired marks every unaccepted solicitation past its expiration as
// expired. Records changed concurrently are skipped; re-running is a no-op.
func (u *SolicitationUseCase) SweepExpired(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Solicitation.UseCase.SweepExpired")
	defer span.End()

	now := u.now()
	candidates, err := u.repo.ListExpirable(ctx, now)
	if err != nil {
		return 0, fail(span, err)
	}

	expired := 0
	for _, s := range candidates {
		if s.Progress != entities.ProgressCreated || !s.Expiration.Before(now) {
			continue
		}
		s.Progress = entities.ProgressExpired
		updated, err := u.repo.Update(ctx, s)
		if err != nil {
			u.logger.WithError(err).WithField("solicitation_id", s.ID).Warn("failed to expire solicitation")
			continue
		}
		if updated.ID == 0 {
			continue
		}
		expired++
		u.publish(ctx, entities.EventSolicitationExpired, updated, updated.AuthorID)
	}
	span.SetAttributes(attribute.Int("solicitation.expired", expired))
	return expired, nil
}

func (u *SolicitationUseCase) Get(ctx context.Context, actor entities.Actor, solicitationID int64) (entities.Solicitation, error) {
	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if !entities.CanTransition(actor, s, entities.ActionView) {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	return s, nil
}

func (u *SolicitationUseCase) GetMine(ctx context.Context, actor entities.Actor, solicitationID int64) (entities.Solicitation, error) {
	s, err := u.load(ctx, solicitationID)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if !s.IsAuthor(actor.ID) {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	return s, nil
}

func (u *SolicitationUseCase) List(ctx context.Context, actor entities.Actor, scope ListScope, page, limit int) ([]entities.Solicitation, error) {
	if page <= 0 || limit <= 0 || limit >= maxPageLimit {
		return nil, ErrInvalidPagination
	}

	filter := interfaces.SolicitationFilter{}
	if scope == ListScopeMine || !actor.Role.In(entities.RoleEmployee, entities.RoleAdmin) {
		authorID := actor.ID
		filter.AuthorID = &authorID
	}

	items, err := u.repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Solicitation{}
	}
	return items, nil
}

func (u *SolicitationUseCase) load(ctx context.Context, id int64) (entities.Solicitation, error) {
	if id <= 0 {
		return entities.Solicitation{}, ErrInvalidSolicitationID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if s.ID == 0 {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	return s, nil
}

func (u *SolicitationUseCase) save(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if updated.ID == 0 {
		return entities.Solicitation{}, ErrSolicitationModified
	}
	return updated, nil
}

func (u *SolicitationUseCase) parties(s entities.Solicitation) []int64 {
	ids := []int64{s.AuthorID}
	if s.EmployeeID != nil {
		ids = append(ids, *s.EmployeeID)
	}
	return ids
}

func (u *SolicitationUseCase) counterparts(s entities.Solicitation, actorID int64) []int64 {
	var ids []int64
	for _, id := range u.parties(s) {
		if id != actorID {
			ids = append(ids, id)
		}
	}
	return ids
}

// publish is fire-and-forget: failures are logged and never surface to the caller.
func (u *SolicitationUseCase) publish(ctx context.Context, eventType entities.EventType, s entities.Solicitation, userIDs ...int64) {
	if u.notifier == nil {
		return
	}
	event := entities.Event{Type: eventType, Data: s, At: u.now()}
	for _, userID := range userIDs {
		if err := u.notifier.Publish(ctx, userID, event); err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"solicitation_id": s.ID,
				"user_id":         userID,
				"event":           eventType,
			}).Warn("failed to publish solicitation event")
		}
	}
}

func (u *SolicitationUseCase) startSpan(ctx context.Context, name string, solicitationID int64) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, name)
	span.SetAttributes(attribute.Int64("solicitation.id", solicitationID))
	return ctx, span
}

func fail(span trace.Span, err error) error {
	if KindOf(err) == KindInternal {
		span.RecordError(err)
	}
	return err
}
