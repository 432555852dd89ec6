package consts

import (
	"tx-resolver-sol/internal/pkg/types"
)

// 账户描述标签（best-effort 标注，仅用于产出的可读性，不参与权限判定）。
const (
	LabelUserWallet    = "User wallet"
	LabelAccount       = "Account"
	LabelTargetProgram = "Target program"
)

// wellKnownLabels 为一批常见地址提供固定描述。
// 未命中的地址按 signer / 普通账户给出通用描述，属正常情况而非错误。
var wellKnownLabels = map[types.Pubkey]string{
	JupiterProgram:         "Jupiter program",
	TokenProgram:           "Token program (SPL Token)",
	TokenProgram2022:       "Token program (Token-2022)",
	AssociatedTokenProgram: "Associated token program",
	SystemProgram:          "System program",
	MemoProgram:            "Memo program",
	ComputeBudgetProgram:   "Compute budget program",
	WSOLMint:               "Wrapped SOL",
	USDCMint:               "USDC mint",
	USDTMint:               "USDT mint",
}

// WellKnownLabel 查询固定标签表，未收录的地址返回 ok=false。
func WellKnownLabel(p types.Pubkey) (string, bool) {
	label, ok := wellKnownLabels[p]
	return label, ok
}
