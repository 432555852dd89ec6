package consts

import (
	"github.com/blocto/solana-go-sdk/rpc"
)

// 日志标记：Solana runtime 在程序日志中输出的指令名前缀。
// 例如 "Program log: Instruction: Route"。
const InstructionLogMarker = "Instruction:"

// DefaultLogSubsystemMarker 是日志命名的偏好标记（大小写不敏感）。
// 命中该标记的日志行优先于仅命中 InstructionLogMarker 的行。
const DefaultLogSubsystemMarker = "JUP"

// 支持的 cluster 名称。
const (
	ClusterMainnetBeta = "mainnet-beta"
	ClusterDevnet      = "devnet"
	ClusterTestnet     = "testnet"
)

// clusterEndpoints 将 cluster 名称映射到公共 RPC 入口。
var clusterEndpoints = map[string]string{
	ClusterMainnetBeta: rpc.MainnetRPCEndpoint,
	ClusterDevnet:      rpc.DevnetRPCEndpoint,
	ClusterTestnet:     rpc.TestnetRPCEndpoint,
}

// ClusterEndpoint 返回 cluster 对应的 RPC 入口，未知 cluster 返回 ok=false。
func ClusterEndpoint(cluster string) (string, bool) {
	endpoint, ok := clusterEndpoints[cluster]
	return endpoint, ok
}
