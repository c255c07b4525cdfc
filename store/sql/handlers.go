package sqlstore

import (
	"strconv"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// Catalog tables are keyed by integers, so the uuid hooks are inert and
// lookups go through the identifier column instead.
func categoryHandlers() repository.ModelHandlers[*categoryRecord] {
	return repository.ModelHandlers[*categoryRecord]{
		NewRecord: func() *categoryRecord {
			return &categoryRecord{}
		},
		GetID: func(*categoryRecord) uuid.UUID {
			return uuid.Nil
		},
		SetID: func(*categoryRecord, uuid.UUID) {},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *categoryRecord) string {
			if record == nil {
				return ""
			}
			return strconv.FormatInt(record.ID, 10)
		},
	}
}
