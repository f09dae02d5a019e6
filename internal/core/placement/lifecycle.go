package placement

import (
	"context"
	"errors"
	"slices"

	"github.com/looplab/fsm"
)

// Kind は状態遷移表を持つエンティティの種別です。
type Kind string

const (
	KindCandidate     Kind = "candidate"
	KindApplication   Kind = "application"
	KindJoiningNotice Kind = "joining_notice"
)

// Transition は要求される状態遷移です。
type Transition string

const (
	TransitionPresent         Transition = "present"
	TransitionAccept          Transition = "accept"
	TransitionReject          Transition = "reject"
	TransitionStartProcessing Transition = "start_processing"
	TransitionHire            Transition = "hire"
	TransitionReopen          Transition = "reopen"
	TransitionEdit            Transition = "edit"
	TransitionSubmit          Transition = "submit"
	TransitionApprove         Transition = "approve"
)

// 任意の状態から任意の状態へ移れる経路は存在しない。
var lifecycles = map[Kind]fsm.Events{
	KindCandidate: {
		{Name: string(TransitionPresent), Src: []string{"registered", "rejected"}, Dst: "presented"},
		{Name: string(TransitionAccept), Src: []string{"presented"}, Dst: "accepted"},
		{Name: string(TransitionReject), Src: []string{"presented"}, Dst: "rejected"},
		{Name: string(TransitionStartProcessing), Src: []string{"accepted"}, Dst: "processing"},
		{Name: string(TransitionHire), Src: []string{"processing"}, Dst: "hired"},
		{Name: string(TransitionReopen), Src: []string{"processing"}, Dst: "accepted"},
	},
	KindApplication: {
		{Name: string(TransitionAccept), Src: []string{"pending"}, Dst: "accepted"},
		{Name: string(TransitionReject), Src: []string{"pending"}, Dst: "rejected"},
	},
	KindJoiningNotice: {
		{Name: string(TransitionEdit), Src: []string{"draft"}, Dst: "draft"},
		{Name: string(TransitionSubmit), Src: []string{"draft"}, Dst: "pending"},
		{Name: string(TransitionApprove), Src: []string{"pending"}, Dst: "approved"},
		{Name: string(TransitionReject), Src: []string{"pending"}, Dst: "rejected"},
	},
}

// machine は current を初期状態とする使い捨ての状態機械を返します。永続化された状態が正であり、機械は保持しません。
func machine(kind Kind, current string) *fsm.FSM {
	return fsm.NewFSM(current, lifecycles[kind], nil)
}

// Advance は current から t を適用した次の状態を返します。許可されない場合は *StateError を返します。
func Advance(kind Kind, current string, t Transition) (string, error) {
	m := machine(kind, current)
	if err := m.Event(context.Background(), string(t)); err != nil {
		// 遷移元と遷移先が同じ (下書きの編集) 場合、fsm は NoTransitionError を返します。
		var same fsm.NoTransitionError
		if !errors.As(err, &same) || same.Err != nil {
			return "", &StateError{Kind: kind, Current: current, Transition: t}
		}
	}
	return m.Current(), nil
}

// CanTransition は遷移が許可されるかを検査します。副作用はありません。
func CanTransition(kind Kind, current string, t Transition) error {
	if !machine(kind, current).Can(string(t)) {
		return &StateError{Kind: kind, Current: current, Transition: t}
	}
	return nil
}

// AllowedTransitions は current から適用できる遷移の一覧を名前順に返します。
func AllowedTransitions(kind Kind, current string) []Transition {
	names := machine(kind, current).AvailableTransitions()
	allowed := make([]Transition, 0, len(names))
	for _, name := range names {
		allowed = append(allowed, Transition(name))
	}
	slices.Sort(allowed)
	return allowed
}
