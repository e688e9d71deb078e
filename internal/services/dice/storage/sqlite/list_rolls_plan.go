package sqlite

import (
	"fmt"

	"github.com/louisbranch/dicebot/internal/services/dice/storage"
)

type listRollsSQLPlan struct {
	whereClause string
	params      []any
	orderClause string
	limitClause string
}

// buildListRollsSQLPlan fetches one extra row so the caller can tell whether
// another page exists.
func buildListRollsSQLPlan(req storage.ListRollsRequest) listRollsSQLPlan {
	whereClause := "1 = 1"
	var params []any
	if req.BeforeSeq > 0 {
		whereClause += " AND seq < ?"
		params = append(params, int64(req.BeforeSeq))
	}
	if req.FilterClause != "" {
		whereClause += " AND " + req.FilterClause
		params = append(params, req.FilterParams...)
	}
	return listRollsSQLPlan{
		whereClause: whereClause,
		params:      params,
		orderClause: "ORDER BY seq DESC",
		limitClause: fmt.Sprintf("LIMIT %d", req.PageSize+1),
	}
}
