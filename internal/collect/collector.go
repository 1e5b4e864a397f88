package collect

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/autocollect/internal/config"
	"github.com/cory-johannsen/autocollect/internal/farm"
	"github.com/cory-johannsen/autocollect/internal/observability"
)

// OwnerResolver finds the structure owning an enclosure.
type OwnerResolver interface {
	OwnerOf(enc *farm.Enclosure) (*farm.Structure, bool)
}

// Phase is the step of a collection pass, reported with any failure.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseResolving
	PhaseScanning
	PhaseTransferring
	PhaseReporting
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseResolving:
		return "resolving"
	case PhaseScanning:
		return "scanning"
	case PhaseTransferring:
		return "transferring"
	case PhaseReporting:
		return "reporting"
	default:
		return "idle"
	}
}

// Collected records one item stored during a pass.
type Collected struct {
	Item farm.Item
	Day  int
}

// Result summarises one pass over one enclosure.
type Result struct {
	Label     string
	Kind      Kind
	Count     int
	Collected []Collected
}

// Collector is the orchestrator invoked by the host once per enclosure per day.
// It is not safe for concurrent use; the host processes enclosures sequentially.
type Collector struct {
	cfg        config.CollectorConfig
	owners     OwnerResolver
	classifier *Classifier
	synth      *Synthesizer
	notifier   Notifier
	logger     *zap.Logger
}

// NewCollector wires a Collector from explicit dependencies.
//
// Precondition: owners, classifier and synth must be non-nil.
// Postcondition: a nil notifier discards notifications; a nil logger discards logs.
func NewCollector(
	cfg config.CollectorConfig,
	owners OwnerResolver,
	classifier *Classifier,
	synth *Synthesizer,
	notifier Notifier,
	logger *zap.Logger,
) *Collector {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Collector{
		cfg:        cfg,
		owners:     owners,
		classifier: classifier,
		synth:      synth,
		notifier:   notifier,
		logger:     observability.OrNop(logger),
	}
}

// OnEnclosureDayElapsed runs one collection pass over enc. day is recorded on
// results and notifications only.
//
// Postcondition: never panics. Every collected floor item has been removed from enc and
// every collected animal has had its pending product cleared; anything that could not
// be stored is left exactly as it was.
func (c *Collector) OnEnclosureDayElapsed(enc *farm.Enclosure, day int) (res Result) {
	phase := PhaseIdle
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("auto-collection failed",
				zap.String("enclosure", enclosureID(enc)),
				zap.Int("day", day),
				zap.Stringer("phase", phase),
				zap.Any("panic", r),
			)
		}
	}()

	phase = PhaseResolving
	if !c.cfg.Enabled {
		return res
	}
	owner, ok := c.owners.OwnerOf(enc)
	if !ok {
		return res
	}
	kind := KindOf(owner.Type)
	if kind == KindUnknown || !c.typeEnabled(owner.Type) {
		return res
	}
	res.Kind = kind
	res.Label = label(enc, owner)

	phase = PhaseScanning
	chests := FindContainers(enc)
	if len(chests) == 0 {
		return res
	}

	phase = PhaseTransferring
	switch kind {
	case KindBarn:
		res.Collected = c.collectAnimals(enc, chests, day)
	case KindCoop:
		res.Collected = c.collectFloor(enc, chests, day)
	}
	res.Count = len(res.Collected)

	phase = PhaseReporting
	c.report(enc, res, day)
	return res
}

// typeEnabled reports whether every category token in structureType has its toggle
// on. A type naming both "Coop" and "Barn" needs both toggles.
func (c *Collector) typeEnabled(structureType string) bool {
	if strings.Contains(structureType, "Coop") && !c.cfg.EnableForCoops {
		return false
	}
	if strings.Contains(structureType, "Barn") && !c.cfg.EnableForBarns {
		return false
	}
	return true
}

func (c *Collector) collectAnimals(enc *farm.Enclosure, chests []*farm.Chest, day int) []Collected {
	var out []Collected
	for _, a := range enc.Animals {
		if got, ok := c.collectAnimal(enc, a, chests); ok {
			out = append(out, Collected{Item: got, Day: day})
		}
	}
	return out
}

func (c *Collector) collectAnimal(enc *farm.Enclosure, a *farm.Animal, chests []*farm.Chest) (got farm.Item, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("collecting animal produce",
				zap.String("enclosure", enclosureID(enc)),
				zap.String("animal", animalName(a)),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()
	if a == nil {
		return got, false
	}
	if isPig(a) && !c.cfg.IncludePigs {
		return got, false
	}
	product, ok, err := c.synth.Extract(a)
	if err != nil {
		c.logger.Error("collecting animal produce",
			zap.String("enclosure", enclosureID(enc)),
			zap.String("animal", a.DisplayName()),
			zap.Error(err),
		)
		return got, false
	}
	if !ok || !c.classifier.IsCollectible(product.Item, KindBarn) {
		return got, false
	}
	outcome, err := Deposit(product.Item, chests)
	if err != nil {
		c.logger.Debug("chest skipped during deposit",
			zap.String("enclosure", enclosureID(enc)),
			zap.String("animal", a.DisplayName()),
			zap.Error(err),
		)
	}
	c.logger.Debug("deposited animal produce",
		zap.String("enclosure", enclosureID(enc)),
		zap.String("animal", a.DisplayName()),
		zap.Stringer("outcome", outcome),
	)
	if !outcome.OK() {
		return got, false
	}
	product.Mutation.Apply(a)
	return *product.Item, true
}

func (c *Collector) collectFloor(enc *farm.Enclosure, chests []*farm.Chest, day int) []Collected {
	var (
		out      []Collected
		toRemove []farm.Position
	)
	enc.Objects.Range(func(pos farm.Position, obj farm.Object) bool {
		if got, ok := c.collectFloorItem(enc, pos, obj, chests); ok {
			toRemove = append(toRemove, pos)
			out = append(out, Collected{Item: got, Day: day})
		}
		return true
	})
	for _, pos := range toRemove {
		enc.Objects.Remove(pos)
	}
	return out
}

func (c *Collector) collectFloorItem(enc *farm.Enclosure, pos farm.Position, obj farm.Object, chests []*farm.Chest) (got farm.Item, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("collecting floor item",
				zap.String("enclosure", enclosureID(enc)),
				zap.Stringer("position", pos),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()
	if !c.classifier.IsCollectible(obj, KindCoop) {
		return got, false
	}
	item := obj.(*farm.Item)
	outcome, err := Deposit(item, chests)
	if err != nil {
		c.logger.Debug("chest skipped during deposit",
			zap.String("enclosure", enclosureID(enc)),
			zap.Stringer("position", pos),
			zap.Error(err),
		)
	}
	c.logger.Debug("deposited floor item",
		zap.String("enclosure", enclosureID(enc)),
		zap.Stringer("position", pos),
		zap.Stringer("outcome", outcome),
	)
	if !outcome.OK() {
		return got, false
	}
	return *item, true
}

func (c *Collector) report(enc *farm.Enclosure, res Result, day int) {
	for _, col := range res.Collected {
		c.notifier.Notify(Notification{
			DisplayName: col.Item.DisplayName(),
			Quantity:    col.Item.Stack,
			Day:         col.Day,
		})
	}
	if res.Count == 0 {
		return
	}
	c.logger.Info(fmt.Sprintf("Auto-collected %d item(s) from %s", res.Count, res.Label),
		zap.String("enclosure", enclosureID(enc)),
		zap.Stringer("kind", res.Kind),
		zap.Int("count", res.Count),
		zap.Int("day", day),
	)
}

func label(enc *farm.Enclosure, owner *farm.Structure) string {
	if enc.Name != "" {
		return enc.Name
	}
	return owner.Type
}

func enclosureID(enc *farm.Enclosure) string {
	if enc == nil {
		return ""
	}
	return enc.ID
}

func animalName(a *farm.Animal) string {
	if a == nil {
		return ""
	}
	return a.DisplayName()
}

func isPig(a *farm.Animal) bool {
	return strings.Contains(a.Type, "Pig")
}
