package ports

type BattleMetrics interface {
	RecordBattle(outcome string)
	RecordConflict()
	RecordFailure()
}

type RouteMetrics interface {
	RecordPath(found bool)
}
