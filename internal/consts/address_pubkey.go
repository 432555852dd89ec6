package consts

import (
	"tx-resolver-sol/internal/pkg/types"
)

// 公钥形式的地址常量（types.Pubkey），用于账户表内的等值比对。
var (
	// Programs
	SystemProgram          = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram           = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022       = types.PubkeyFromBase58(TokenProgram2022Str)
	AssociatedTokenProgram = types.PubkeyFromBase58(AssociatedTokenProgramStr)
	MemoProgram            = types.PubkeyFromBase58(MemoProgramStr)
	ComputeBudgetProgram   = types.PubkeyFromBase58(ComputeBudgetProgramStr)

	// 常用 mint
	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)
	USDCMint = types.PubkeyFromBase58(USDCMintStr)
	USDTMint = types.PubkeyFromBase58(USDTMintStr)

	// 聚合器
	JupiterProgram = types.PubkeyFromBase58(JupiterProgramStr)
)
