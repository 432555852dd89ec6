package resolver

import (
	"errors"
	"fmt"

	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/pkg/types"
)

var (
	// ErrTargetAbsent 表示目标程序地址不在账户表中。
	ErrTargetAbsent = errors.New("target program not present in account table")

	// ErrInstructionAbsent 表示目标程序在账户表中，但没有任何指令调用它。
	ErrInstructionAbsent = errors.New("no instruction invokes target program")

	// ErrMalformedIndex 表示指令的账户索引越出账户表边界。
	ErrMalformedIndex = errors.New("instruction account index out of range")
)

// LocatedInstruction 表示定位到的目标程序指令。
// AccountIndices 原样保留消息中的索引列表（含重复项），在本次解析内有效。
type LocatedInstruction struct {
	Position       int    // 指令在 message.instructions 中的位置
	Data           []byte // 不透明指令数据，不做解码
	AccountIndices []int
}

// LocateInstruction 在指令列表中定位首条由目标程序发出的指令。
//
// 先在账户表中按等值查找目标程序索引（缺席 → ErrTargetAbsent，且不再扫描），
// 再按原始顺序扫描指令，programIdIndex 命中即返回；多条命中时取最早一条。
// 无命中 → ErrInstructionAbsent。两类缺席均为可上报的常规结果，不 panic。
func LocateInstruction(table *AccountTable, instructions []domain.CompiledInstruction, target types.Pubkey) (*LocatedInstruction, error) {
	targetIdx := table.IndexOf(target)
	if targetIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTargetAbsent, target)
	}

	for pos, inst := range instructions {
		if inst.ProgramIDIndex != targetIdx {
			continue
		}
		return &LocatedInstruction{
			Position:       pos,
			Data:           inst.Data,
			AccountIndices: inst.Accounts,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInstructionAbsent, target)
}
