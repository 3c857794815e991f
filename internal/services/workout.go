package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/reconcile"
	"github.com/Trkcnl/twacktwack/internal/repositories"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// WorkoutReader defines read operations for workouts.
type WorkoutReader interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]models.WorkoutLogDB, error)
	GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.WorkoutLogDB, error)
}

// WorkoutWriter defines write operations for workouts.
type WorkoutWriter interface {
	Insert(ctx context.Context, userID uuid.UUID, begintime, endtime time.Time) (int64, error)
	UpdateTimes(ctx context.Context, userID uuid.UUID, id int64, begintime, endtime time.Time) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

// ExerciseLogListReader defines the exercise log reads the workout service needs.
type ExerciseLogListReader interface {
	ListByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseLogDB, error)
	ListDetailByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseLogDetail, error)
}

// ExerciseLogWriter defines write operations for exercise logs.
type ExerciseLogWriter interface {
	Insert(ctx context.Context, workoutID, exerciseTypeID int64) (int64, error)
	UpdateType(ctx context.Context, id, exerciseTypeID int64) error
	Delete(ctx context.Context, id int64) error
}

// ExerciseSetListReader defines the set reads the workout service needs.
type ExerciseSetListReader interface {
	ListByExerciseLog(ctx context.Context, exerciseLogID int64) ([]models.ExerciseSetDB, error)
	ListByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseSetDB, error)
}

// ExerciseSetWriter defines write operations for sets.
type ExerciseSetWriter interface {
	Insert(ctx context.Context, exerciseLogID int64, reps int, weightKg float64, rir int) (int64, error)
	Update(ctx context.Context, id int64, reps int, weightKg float64, rir int) error
	Delete(ctx context.Context, id int64) error
}

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ExerciseSetInput is the normalized write shape of one set. A nil ID means
// the set is new.
type ExerciseSetInput struct {
	ID       *int64
	Reps     int
	WeightKg float64
	RIR      int
}

// ExerciseLogInput is the normalized write shape of one exercise log. The
// catalog reference travels as a bare identifier.
type ExerciseLogInput struct {
	ID             *int64
	ExerciseTypeID int64
	Sets           []ExerciseSetInput
}

// WorkoutInput is the normalized write shape of a workout session.
type WorkoutInput struct {
	Begintime    time.Time
	Endtime      time.Time
	ExerciseLogs []ExerciseLogInput
}

// workoutEvent is the message published after a committed workout write.
type workoutEvent struct {
	Event     string    `json:"event"`
	WorkoutID int64     `json:"workout_id"`
	UserID    uuid.UUID `json:"user_id"`
	At        time.Time `json:"at"`
}

// WorkoutService owns the nested reconciliation of workout sessions: top-level
// scalars update unconditionally, child collections are diffed by identifier
// and the whole result is applied in one transaction.
type WorkoutService struct {
	reader      WorkoutReader
	writer      WorkoutWriter
	logReader   ExerciseLogListReader
	logWriter   ExerciseLogWriter
	setReader   ExerciseSetListReader
	setWriter   ExerciseSetWriter
	typeReader  ExerciseTypeReader
	txRunner    TxRunner
	kafkaWriter KafkaWriter
}

// NewWorkoutService creates a new WorkoutService. kafkaWriter may be nil to
// disable event publishing.
func NewWorkoutService(
	reader WorkoutReader,
	writer WorkoutWriter,
	logReader ExerciseLogListReader,
	logWriter ExerciseLogWriter,
	setReader ExerciseSetListReader,
	setWriter ExerciseSetWriter,
	typeReader ExerciseTypeReader,
	txRunner TxRunner,
	kafkaWriter KafkaWriter,
) *WorkoutService {
	return &WorkoutService{
		reader:      reader,
		writer:      writer,
		logReader:   logReader,
		logWriter:   logWriter,
		setReader:   setReader,
		setWriter:   setWriter,
		typeReader:  typeReader,
		txRunner:    txRunner,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller's workouts in the read shape, newest first.
func (svc *WorkoutService) List(ctx context.Context, callerID uuid.UUID) ([]models.WorkoutDetail, error) {
	workouts, err := svc.reader.ListOwned(ctx, callerID)
	if err != nil {
		return nil, err
	}

	details := make([]models.WorkoutDetail, 0, len(workouts))
	for _, w := range workouts {
		detail, err := svc.loadDetail(ctx, &w)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// Get returns one owned workout in the read shape, ErrNotFound otherwise.
func (svc *WorkoutService) Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.WorkoutDetail, error) {
	workout, err := svc.reader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrNotFound
	}
	return svc.loadDetail(ctx, workout)
}

// Create stores a new workout tree. Client-supplied identifiers on nested
// items are discarded; the store assigns all identifiers.
func (svc *WorkoutService) Create(ctx context.Context, callerID uuid.UUID, in WorkoutInput) (*models.WorkoutDetail, error) {
	if err := svc.validateInput(ctx, callerID, in); err != nil {
		return nil, err
	}

	var workoutID int64
	err := svc.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		id, err := svc.writer.Insert(ctx, callerID, in.Begintime, in.Endtime)
		if err != nil {
			return err
		}
		workoutID = id

		for _, logIn := range in.ExerciseLogs {
			if err := svc.insertLog(ctx, workoutID, logIn); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapIntegrityError(err)
	}

	svc.publish(ctx, "workout.logged", workoutID, callerID)
	return svc.Get(ctx, callerID, workoutID)
}

// Update reconciles the submitted tree against the stored one: top-level
// times update unconditionally, omitted children are deleted, referenced
// children update in place, new children are inserted. All of it commits
// atomically or not at all; the response is the freshly loaded read shape.
func (svc *WorkoutService) Update(ctx context.Context, callerID uuid.UUID, id int64, in WorkoutInput) (*models.WorkoutDetail, error) {
	workout, err := svc.reader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrNotFound
	}

	if err := svc.validateInput(ctx, callerID, in); err != nil {
		return nil, err
	}

	existingLogs, err := svc.logReader.ListByWorkout(ctx, id)
	if err != nil {
		return nil, err
	}

	logPlan, err := reconcile.Diff(existingLogs, in.ExerciseLogs,
		func(l models.ExerciseLogDB) int64 { return l.ID },
		func(i ExerciseLogInput) (int64, bool) {
			if i.ID == nil {
				return 0, false
			}
			return *i.ID, true
		},
	)
	if err != nil {
		return nil, diffValidationError("exercise_logs", err)
	}

	// Per-log set plans are computed up front so the transaction below only
	// applies writes.
	type setReconciliation struct {
		logID int64
		plan  reconcile.Plan[models.ExerciseSetDB, ExerciseSetInput]
	}
	setPlans := make([]setReconciliation, 0, len(logPlan.ToUpdate))
	for _, match := range logPlan.ToUpdate {
		existingSets, err := svc.setReader.ListByExerciseLog(ctx, match.Existing.ID)
		if err != nil {
			return nil, err
		}

		setPlan, err := reconcile.Diff(existingSets, match.Incoming.Sets,
			func(s models.ExerciseSetDB) int64 { return s.ID },
			func(i ExerciseSetInput) (int64, bool) {
				if i.ID == nil {
					return 0, false
				}
				return *i.ID, true
			},
		)
		if err != nil {
			return nil, diffValidationError("exercise_sets", err)
		}
		setPlans = append(setPlans, setReconciliation{logID: match.Existing.ID, plan: setPlan})
	}

	err = svc.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := svc.writer.UpdateTimes(ctx, callerID, id, in.Begintime, in.Endtime); err != nil {
			return err
		}

		for _, log := range logPlan.ToDelete {
			if err := svc.logWriter.Delete(ctx, log.ID); err != nil {
				return err
			}
		}

		for i, match := range logPlan.ToUpdate {
			if err := svc.logWriter.UpdateType(ctx, match.Existing.ID, match.Incoming.ExerciseTypeID); err != nil {
				return err
			}

			plan := setPlans[i].plan
			for _, set := range plan.ToDelete {
				if err := svc.setWriter.Delete(ctx, set.ID); err != nil {
					return err
				}
			}
			for _, setMatch := range plan.ToUpdate {
				if err := svc.setWriter.Update(ctx, setMatch.Existing.ID, setMatch.Incoming.Reps, setMatch.Incoming.WeightKg, setMatch.Incoming.RIR); err != nil {
					return err
				}
			}
			for _, setIn := range plan.ToInsert {
				if _, err := svc.setWriter.Insert(ctx, setPlans[i].logID, setIn.Reps, setIn.WeightKg, setIn.RIR); err != nil {
					return err
				}
			}
		}

		for _, logIn := range logPlan.ToInsert {
			if err := svc.insertLog(ctx, id, logIn); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapIntegrityError(err)
	}

	svc.publish(ctx, "workout.logged", id, callerID)
	return svc.Get(ctx, callerID, id)
}

// Delete removes an owned workout and everything under it.
func (svc *WorkoutService) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	deleted, err := svc.writer.Delete(ctx, callerID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete workout", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	svc.publish(ctx, "workout.deleted", id, callerID)
	return nil
}

// insertLog inserts one new exercise log with all its sets. Identifiers on
// the incoming items are ignored: inserts never pick their own keys.
func (svc *WorkoutService) insertLog(ctx context.Context, workoutID int64, in ExerciseLogInput) error {
	logID, err := svc.logWriter.Insert(ctx, workoutID, in.ExerciseTypeID)
	if err != nil {
		return err
	}

	for _, setIn := range in.Sets {
		if _, err := svc.setWriter.Insert(ctx, logID, setIn.Reps, setIn.WeightKg, setIn.RIR); err != nil {
			return err
		}
	}
	return nil
}

// validateInput checks the interval, every set's bounds and every catalog
// reference before any write happens. The same checks back the database
// constraints, so a violation maps to a field error rather than a 500.
func (svc *WorkoutService) validateInput(ctx context.Context, callerID uuid.UUID, in WorkoutInput) error {
	if err := models.ValidateWorkoutTimes(in.Begintime, in.Endtime); err != nil {
		return err
	}

	for _, logIn := range in.ExerciseLogs {
		et, err := svc.typeReader.GetVisibleByID(ctx, &callerID, logIn.ExerciseTypeID)
		if err != nil {
			return err
		}
		if et == nil {
			errs := validation.New()
			errs.Add("exercise_type", "Invalid exercise type.")
			return errs.Err()
		}

		for _, setIn := range logIn.Sets {
			if err := models.ValidateExerciseSet(setIn.Reps, setIn.WeightKg, setIn.RIR); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadDetail assembles the read shape with one query per nesting level.
func (svc *WorkoutService) loadDetail(ctx context.Context, workout *models.WorkoutLogDB) (*models.WorkoutDetail, error) {
	logs, err := svc.logReader.ListDetailByWorkout(ctx, workout.ID)
	if err != nil {
		return nil, err
	}

	sets, err := svc.setReader.ListByWorkout(ctx, workout.ID)
	if err != nil {
		return nil, err
	}

	setsByLog := make(map[int64][]models.ExerciseSetDB, len(logs))
	for _, s := range sets {
		setsByLog[s.ExerciseLogID] = append(setsByLog[s.ExerciseLogID], s)
	}
	for i := range logs {
		logs[i].Sets = setsByLog[logs[i].ID]
	}

	return &models.WorkoutDetail{
		ID:           workout.ID,
		Begintime:    workout.Begintime,
		Endtime:      workout.Endtime,
		ExerciseLogs: logs,
	}, nil
}

// publish emits a workout event. Publishing is best effort: a broker failure
// is logged and never turns a committed write into a client-facing error.
func (svc *WorkoutService) publish(ctx context.Context, event string, workoutID int64, userID uuid.UUID) {
	if svc.kafkaWriter == nil {
		return
	}

	payload, err := json.Marshal(workoutEvent{
		Event:     event,
		WorkoutID: workoutID,
		UserID:    userID,
		At:        time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal workout event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(workoutID, 10)),
		Value: payload,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish workout event", "event", event, "workout_id", workoutID, "err", err)
	}
}

// diffValidationError converts a reconcile failure into the field-keyed shape.
func diffValidationError(field string, err error) error {
	errs := validation.New()
	switch {
	case errors.Is(err, reconcile.ErrUnknownID):
		errs.Add(field, "Identifier does not belong to this resource.")
	case errors.Is(err, reconcile.ErrDuplicateID):
		errs.Add(field, "Duplicate identifier in payload.")
	default:
		errs.Add(field, err.Error())
	}
	return errs.Err()
}

// mapIntegrityError converts store-level constraint violations surfaced from
// a transaction into field errors where feasible.
func mapIntegrityError(err error) error {
	if err == nil {
		return nil
	}
	if repositories.IsUniqueViolation(err) {
		errs := validation.New()
		errs.Add("exercise_type", "Exercise type already present in this workout.")
		return errs.Err()
	}
	return err
}
