package object

// Kind tags which catalog entry an Entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMissile
	KindNuclear
	KindLaser
	KindEnemy
	KindMeteor
	KindGuided
	KindStar
	KindRain
	KindMetralha
	KindTransport
	KindEncrenca
	KindDebris
	KindEngineFlame
)

// AllKinds lists every kind, in declaration order.
var AllKinds = []Kind{
	KindPlayer, KindMissile, KindNuclear, KindLaser, KindEnemy, KindMeteor,
	KindGuided, KindStar, KindRain, KindMetralha, KindTransport, KindEncrenca,
	KindDebris, KindEngineFlame,
}

var kindNames = [...]string{
	KindPlayer:      "player",
	KindMissile:     "missile",
	KindNuclear:     "nuclear",
	KindLaser:       "laser",
	KindEnemy:       "enemy",
	KindMeteor:      "meteor",
	KindGuided:      "guided",
	KindStar:        "star",
	KindRain:        "rain",
	KindMetralha:    "metralha",
	KindTransport:   "transport",
	KindEncrenca:    "encrenca",
	KindDebris:      "debris",
	KindEngineFlame: "engine_flame",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Side is the collection an entity lives in.
type Side uint8

const (
	SideFriendly Side = iota
	SideEnemy
	SideDebris
)

// Side routes an entity to its collection. Missiles follow their Friendly
// flag; Nuclear and Laser shots always belong to the player.
func (e *Entity) Side() Side {
	switch e.Kind {
	case KindPlayer, KindNuclear, KindLaser:
		return SideFriendly
	case KindMissile:
		if e.Friendly {
			return SideFriendly
		}
		return SideEnemy
	case KindDebris, KindEngineFlame:
		return SideDebris
	default:
		return SideEnemy
	}
}
