package component

// PlayerTag marks the single controlled entity.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// MonsterTag marks a pursuing adversary.
type MonsterTag struct{}

var MonsterTagComponent = NewComponent[MonsterTag]()
