package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/store"
)

// FieldService owns the property, its fields (talhões) and each field's
// soil-analysis history, plus the season productivity records fed by
// CloseCycle.
type FieldService struct {
	state *State
	store Store
	log   zerolog.Logger
}

func NewFieldService(state *State, st Store, log zerolog.Logger) *FieldService {
	return &FieldService{state: state, store: st, log: log}
}

func (s *FieldService) Property() model.Property {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Property
}

func (s *FieldService) SeasonHistory() []model.SeasonYield {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Seasons
}

// SaveProperty replaces the property wholesale, as the property form does.
func (s *FieldService) SaveProperty(property model.Property) (model.Property, error) {
	if property.Name == "" {
		return model.Property{}, fmt.Errorf("%w: property name is required", ErrInvalidInput)
	}
	if property.Fields == nil {
		property.Fields = []model.Field{}
	}
	for i := range property.Fields {
		property.Fields[i].RefreshSoilSnapshot()
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.Property = property
	s.store.Save(store.KeyProperty, s.state.Property)
	return s.state.Property, nil
}

func (s *FieldService) AddField(field model.Field) (model.Field, error) {
	if field.ID == "" {
		return model.Field{}, fmt.Errorf("%w: field id is required", ErrInvalidInput)
	}
	if field.CycleStatus == "" {
		field.CycleStatus = model.CycleStatusAwaiting
	}
	if field.SoilHistory == nil {
		field.SoilHistory = []model.SoilAnalysis{}
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, existing := range s.state.Property.Fields {
		if existing.ID == field.ID {
			return model.Field{}, fmt.Errorf("%w: field id %s already in use", ErrInvalidInput, field.ID)
		}
	}

	fields := make([]model.Field, 0, len(s.state.Property.Fields)+1)
	fields = append(fields, s.state.Property.Fields...)
	fields = append(fields, field)
	s.state.Property.Fields = fields

	s.store.Save(store.KeyProperty, s.state.Property)
	return field, nil
}

// CycleUpdate is a partial merge into a field's operational cycle; nil
// members are left untouched.
type CycleUpdate struct {
	Status   *model.CycleStatus
	Progress *float64
	Yield    *float64
}

func (s *FieldService) UpdateFieldCycle(fieldID string, update CycleUpdate) (model.Field, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	index := s.findField(fieldID)
	if index < 0 {
		return model.Field{}, fmt.Errorf("%w: field %s", ErrNotFound, fieldID)
	}

	fields := cloneFields(s.state.Property.Fields)
	field := &fields[index]
	if update.Status != nil {
		field.CycleStatus = *update.Status
	}
	if update.Progress != nil {
		field.CycleProgress = clampPercent(*update.Progress)
	}
	if update.Yield != nil {
		field.Yield = *update.Yield
	}
	s.state.Property.Fields = fields

	s.store.Save(store.KeyProperty, s.state.Property)
	return *field, nil
}

// CloseCycle archives a harvest: the final yield lands in the season record
// for the field's crop bucket and the field resets for the next cycle. The
// in-season detail is intentionally not retained anywhere else.
func (s *FieldService) CloseCycle(fieldID string, finalYield float64, seasonLabel string) error {
	if seasonLabel == "" {
		return fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	index := s.findField(fieldID)
	if index < 0 {
		return fmt.Errorf("%w: field %s", ErrNotFound, fieldID)
	}

	bucket := model.ClassifyCrop(s.state.Property.Fields[index].Crop)

	seasons := make([]model.SeasonYield, len(s.state.Seasons))
	copy(seasons, s.state.Seasons)

	found := false
	for i := range seasons {
		if seasons[i].Season == seasonLabel {
			seasons[i].SetBucket(bucket, finalYield)
			found = true
			break
		}
	}
	if !found {
		record := model.SeasonYield{Season: seasonLabel}
		record.SetBucket(bucket, finalYield)
		seasons = append(seasons, record)
	}
	s.state.Seasons = seasons

	fields := cloneFields(s.state.Property.Fields)
	fields[index].CycleStatus = model.CycleStatusAwaiting
	fields[index].CycleProgress = 0
	fields[index].Yield = 0
	s.state.Property.Fields = fields

	s.store.Save(store.KeySeasonHistory, s.state.Seasons)
	s.store.Save(store.KeyProperty, s.state.Property)

	s.log.Info().
		Str("field", fieldID).
		Str("season", seasonLabel).
		Str("bucket", string(bucket)).
		Float64("yield", finalYield).
		Msg("cycle closed")
	return nil
}

// UpsertSoilAnalysis appends a new dated lab report or replaces an existing
// one in place, then refreshes the field's current-soil snapshot.
func (s *FieldService) UpsertSoilAnalysis(fieldID string, analysis model.SoilAnalysis) (model.SoilAnalysis, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	index := s.findField(fieldID)
	if index < 0 {
		return model.SoilAnalysis{}, fmt.Errorf("%w: field %s", ErrNotFound, fieldID)
	}

	analysis.AnalysisDate = model.NormalizeDate(analysis.AnalysisDate)

	fields := cloneFields(s.state.Property.Fields)
	field := &fields[index]

	history := make([]model.SoilAnalysis, len(field.SoilHistory))
	copy(history, field.SoilHistory)

	if analysis.ID == "" || analysis.ID == model.SoilAnalysisNewID {
		analysis.ID = uuid.NewString()
		history = append(history, analysis)
	} else {
		replaced := false
		for i := range history {
			if history[i].ID == analysis.ID {
				history[i] = analysis
				replaced = true
				break
			}
		}
		if !replaced {
			return model.SoilAnalysis{}, fmt.Errorf("%w: soil analysis %s", ErrNotFound, analysis.ID)
		}
	}

	field.SoilHistory = history
	field.RefreshSoilSnapshot()
	s.state.Property.Fields = fields

	s.store.Save(store.KeyProperty, s.state.Property)
	return analysis, nil
}

func (s *FieldService) DeleteField(fieldID string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	index := s.findField(fieldID)
	if index < 0 {
		return fmt.Errorf("%w: field %s", ErrNotFound, fieldID)
	}

	fields := make([]model.Field, 0, len(s.state.Property.Fields)-1)
	fields = append(fields, s.state.Property.Fields[:index]...)
	fields = append(fields, s.state.Property.Fields[index+1:]...)
	s.state.Property.Fields = fields

	s.store.Save(store.KeyProperty, s.state.Property)
	return nil
}

// findField assumes the state lock is held.
func (s *FieldService) findField(fieldID string) int {
	for i := range s.state.Property.Fields {
		if s.state.Property.Fields[i].ID == fieldID {
			return i
		}
	}
	return -1
}

func cloneFields(fields []model.Field) []model.Field {
	cloned := make([]model.Field, len(fields))
	copy(cloned, fields)
	return cloned
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
