package repository

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqInvalidTextRep      = "22P02"
)

func pqCode(err error) (pq.ErrorCode, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Message
	}
	return "", ""
}

// isInvalidID reports whether Postgres rejected an id that is not a UUID.
func isInvalidID(err error) bool {
	code, _ := pqCode(err)
	return code == pqInvalidTextRep
}

// buildSetClauses turns a validated partial update into "column = $n" clauses.
// Keys are sorted so the generated query is stable; unknown keys are skipped.
func buildSetClauses(updates map[string]interface{}, allowed map[string]bool, log *logrus.Logger, entity, id string) ([]string, []interface{}) {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		if !allowed[key] {
			log.Warnf("Repository: Skipping unknown field '%s' provided for %s update ID %s", key, entity, id)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	setClauses := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	for i, key := range keys {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", key, i+1))
		args = append(args, updates[key])
	}
	return setClauses, args
}
