package persi_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/assert"

	"github.com/jrhy/persi/unsync"
)

// The exerciser drives a persistent map against a model map through
// arbitrary command sequences: inserts under both duplicate policies,
// lookups, snapshots of earlier versions, and diffs between versions.
// Snapshot commands are what make this bite: every mutation afterward
// must leave the snapshot byte-for-byte equal to its model copy.

type expected struct {
	entries  map[uint]uint
	snapshot []map[uint]uint
}

type system struct {
	m        unsync.RBMap[uint, uint]
	snapshot []*unsync.RBMap[uint, uint]
	cmdCount int
}

const (
	uimax      = 99_999
	nSnapshots = 5
)

var (
	testThingy *testing.T
	cmdCount   = 0
	debug      = false
)

func progress(i interface{}) {
	if debug {
		fmt.Printf("%v\n", i)
	}
}

func mapEntries(m unsync.RBMap[uint, uint]) map[uint]uint {
	out := map[uint]uint{}
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

type getResult struct {
	value uint
	ok    bool
}

type insertCommand uint

func (value insertCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	next := sys.m.Inserted(uint(value), uint(value))
	sys.m.Release()
	sys.m = next
	sys.cmdCount++
	return nil
}

func (value insertCommand) NextState(state commands.State) commands.State {
	s := state.(*expected)
	// first writer wins: an existing entry stays
	if _, present := s.entries[uint(value)]; !present {
		s.entries[uint(value)] = uint(value)
	}
	return state
}

func (value insertCommand) PreCondition(state commands.State) bool { return true }

func (value insertCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	if result != nil {
		fmt.Printf("insertCommandPostCondition: %v\n", result)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	progress(value)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (value insertCommand) String() string {
	return fmt.Sprintf("Insert(%d,%d)", value, value)
}

var genInsert = uintCommandGen(
	func(value uint) commands.Command { return insertCommand(value) },
	func(command interface{}) uint { return uint(command.(insertCommand)) })

type putCommand uint

func (value putCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	next := sys.m.InsertedOrReplaced(uint(value), uint(value)+1)
	sys.m.Release()
	sys.m = next
	sys.cmdCount++
	return nil
}

func (value putCommand) NextState(state commands.State) commands.State {
	state.(*expected).entries[uint(value)] = uint(value) + 1
	return state
}

func (value putCommand) PreCondition(state commands.State) bool { return true }

func (value putCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	if result != nil {
		fmt.Printf("putCommandPostCondition: %v\n", result)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	progress(value)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (value putCommand) String() string {
	return fmt.Sprintf("Put(%d,%d)", value, value+1)
}

var genPut = uintCommandGen(
	func(value uint) commands.Command { return putCommand(value) },
	func(command interface{}) uint { return uint(command.(putCommand)) })

type getCommand uint

func (value getCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	v, ok := sys.m.Get(uint(value))
	sys.cmdCount++
	return getResult{v, ok}
}

func (value getCommand) NextState(state commands.State) commands.State { return state }

func (value getCommand) PreCondition(state commands.State) bool { return true }

func (value getCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	expectedValue, present := state.(*expected).entries[uint(value)]
	actual := result.(getResult)
	if actual.ok != present || (present && actual.value != expectedValue) {
		fmt.Printf("getCommandPostCondition: (key=%v) expected=%v,%v actual=%v,%v\n",
			value, expectedValue, present, actual.value, actual.ok)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	progress(value)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (value getCommand) String() string {
	return fmt.Sprintf("Get(%d)", value)
}

var genGet = uintCommandGen(
	func(value uint) commands.Command { return getCommand(value) },
	func(command interface{}) uint { return uint(command.(getCommand)) })

type snapshotCommand uint

func (n snapshotCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	slot := int(n) % nSnapshots
	if sys.snapshot[slot] != nil {
		sys.snapshot[slot].Release()
	}
	snap := sys.m.Clone()
	sys.snapshot[slot] = &snap
	sys.cmdCount++
	return nil
}

func (n snapshotCommand) NextState(state commands.State) commands.State {
	s := state.(*expected)
	slot := int(n) % nSnapshots
	snapshot := make(map[uint]uint, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	s.snapshot[slot] = snapshot
	return s
}

func (n snapshotCommand) PreCondition(state commands.State) bool { return true }

func (n snapshotCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	progress(n)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (n snapshotCommand) String() string {
	return fmt.Sprintf("Snapshot(%d)", int(n)%nSnapshots)
}

var genSnapshot = uintCommandGen(
	func(slot uint) commands.Command { return snapshotCommand(slot) },
	func(command interface{}) uint { return uint(command.(snapshotCommand)) })

type checkSnapshotCommand uint

func (n checkSnapshotCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	slot := int(n) % nSnapshots
	sys.cmdCount++
	return mapEntries(*sys.snapshot[slot])
}

func (n checkSnapshotCommand) NextState(state commands.State) commands.State { return state }

func (n checkSnapshotCommand) PreCondition(state commands.State) bool {
	return state.(*expected).snapshot[int(n)%nSnapshots] != nil
}

func (n checkSnapshotCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	slot := int(n) % nSnapshots
	want := state.(*expected).snapshot[slot]
	got := result.(map[uint]uint)
	if !assert.ObjectsAreEqual(want, got) {
		assert.Equal(testThingy, want, got)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	progress(n)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (n checkSnapshotCommand) String() string {
	return fmt.Sprintf("CheckSnapshot(%d)", int(n)%nSnapshots)
}

var genCheckSnapshot = uintCommandGen(
	func(slot uint) commands.Command { return checkSnapshotCommand(slot) },
	func(command interface{}) uint { return uint(command.(checkSnapshotCommand)) })

type diffCommand uint

func (n diffCommand) Run(s commands.SystemUnderTest) commands.Result {
	sys := s.(*system)
	slot := int(n) % nSnapshots
	diffs := map[bool]map[uint]uint{
		false: {},
		true:  {},
	}
	sys.m.DiffIter(*sys.snapshot[slot],
		func(added, removed bool, k uint, addedValue, removedValue uint) bool {
			if added {
				diffs[false][k] = addedValue
			}
			if removed {
				diffs[true][k] = removedValue
			}
			return true
		})
	sys.cmdCount++
	return diffs
}

func (n diffCommand) NextState(state commands.State) commands.State { return state }

func (n diffCommand) PreCondition(state commands.State) bool {
	return state.(*expected).snapshot[int(n)%nSnapshots] != nil
}

func (n diffCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	diffs := map[bool]map[uint]uint{
		false: {},
		true:  {},
	}
	slot := int(n) % nSnapshots
	new := state.(*expected).entries
	old := state.(*expected).snapshot[slot]
	for k, v := range new {
		oldVal, oldHasKey := old[k]
		if oldHasKey && oldVal != v {
			diffs[true][k] = oldVal
			diffs[false][k] = v
		} else if !oldHasKey {
			diffs[false][k] = v
		}
	}
	for k, v := range old {
		if _, newHasKey := new[k]; !newHasKey {
			diffs[true][k] = v
		}
	}
	actual := result.(map[bool]map[uint]uint)
	if !assert.ObjectsAreEqual(diffs, actual) {
		assert.Equal(testThingy, diffs, actual)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	progress(n)
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (n diffCommand) String() string {
	return fmt.Sprintf("Diff(%d)", int(n)%nSnapshots)
}

var genDiff = uintCommandGen(
	func(slot uint) commands.Command { return diffCommand(slot) },
	func(command interface{}) uint { return uint(command.(diffCommand)) })

var SizeCommand = &commands.ProtoCommand{
	Name: "Size",
	RunFunc: func(s commands.SystemUnderTest) commands.Result {
		sys := s.(*system)
		sys.cmdCount++
		return len(mapEntries(sys.m))
	},
	NextStateFunc:    func(state commands.State) commands.State { return state },
	PreConditionFunc: func(state commands.State) bool { return true },
	PostConditionFunc: func(state commands.State, result commands.Result) *gopter.PropResult {
		if len(state.(*expected).entries) != result.(int) {
			fmt.Printf("sizeCommandPostCondition: expected=%d, actual=%d\n",
				len(state.(*expected).entries), result.(int))
			return &gopter.PropResult{Status: gopter.PropFalse}
		}
		progress("Size")
		return &gopter.PropResult{Status: gopter.PropTrue}
	},
}

func uintCommandGen(toCommand func(uint) commands.Command, fromCommand func(interface{}) uint) gopter.Gen {
	return gen.UIntRange(0, uimax).Map(func(value uint) commands.Command {
		return toCommand(value)
	}).WithShrinker(func(v interface{}) gopter.Shrink {
		return gen.UIntShrinker(fromCommand(v)).Map(func(value uint) commands.Command {
			return toCommand(value)
		})
	})
}

var mapCommands = &commands.ProtoCommands{
	NewSystemUnderTestFunc: func(initialState commands.State) commands.SystemUnderTest {
		m := unsync.NewRBMap[uint, uint]()
		for key, value := range initialState.(*expected).entries {
			next := m.InsertedOrReplaced(key, value)
			m.Release()
			m = next
		}
		progress("NewSystem")
		return &system{m, make([]*unsync.RBMap[uint, uint], nSnapshots), 0}
	},
	DestroySystemUnderTestFunc: func(s commands.SystemUnderTest) {
		sys := s.(*system)
		sys.m.Release()
		for _, snap := range sys.snapshot {
			if snap != nil {
				snap.Release()
			}
		}
		cmdCount += sys.cmdCount
	},
	InitialStateGen: gen.MapOf(gen.UIntRange(0, uimax), gen.UIntRange(0, uimax)).Map(func(entries map[uint]uint) *expected {
		return &expected{
			entries:  entries,
			snapshot: make([]map[uint]uint, nSnapshots),
		}
	}),
	InitialPreConditionFunc: func(state commands.State) bool {
		_ = state.(*expected)
		return true
	},
	GenCommandFunc: func(state commands.State) gopter.Gen {
		return gen.Weighted(
			[]gen.WeightedGen{
				{Weight: 100, Gen: genInsert},
				{Weight: 100, Gen: genPut},
				{Weight: 100, Gen: genGet},
				{Weight: 5, Gen: genSnapshot},
				{Weight: 20, Gen: genCheckSnapshot},
				{Weight: 5, Gen: genDiff},
				{Weight: 20, Gen: gen.Const(SizeCommand)},
			},
		)
	},
}

func TestExerciser(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	if !testing.Short() {
		parameters.MaxSize = 2048
	}
	properties := gopter.NewProperties(parameters)
	properties.Property("map exerciser", commands.Prop(mapCommands))
	testThingy = t
	properties.TestingRun(t)
	testThingy = nil
	if !t.Failed() {
		fmt.Printf("successful commands: %d\n", cmdCount)
	}
}
