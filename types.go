package solana

import "encoding/json"

// Commitment is the bank state a query is evaluated against.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

var commitmentRank = map[Commitment]int{
	CommitmentProcessed: 1,
	CommitmentConfirmed: 2,
	CommitmentFinalized: 3,
}

// Reached reports whether a status at level c satisfies want. Unknown levels
// never do.
func (c Commitment) Reached(want Commitment) bool {
	have, ok := commitmentRank[c]
	return ok && have >= commitmentRank[want]
}

// Encoding of account data.
type Encoding string

const (
	EncodingBase58     Encoding = "base58"
	EncodingBase64     Encoding = "base64"
	EncodingBase64Zstd Encoding = "base64+zstd"
	EncodingJSONParsed Encoding = "jsonParsed"
)

// TransactionEncoding of returned transactions.
type TransactionEncoding string

const (
	TransactionEncodingJSON       TransactionEncoding = "json"
	TransactionEncodingJSONParsed TransactionEncoding = "jsonParsed"
	TransactionEncodingBase58     TransactionEncoding = "base58"
	TransactionEncodingBase64     TransactionEncoding = "base64"
)

// TransactionDetails level returned by getBlock.
type TransactionDetails string

const (
	TransactionDetailsFull       TransactionDetails = "full"
	TransactionDetailsAccounts   TransactionDetails = "accounts"
	TransactionDetailsSignatures TransactionDetails = "signatures"
	TransactionDetailsNone       TransactionDetails = "none"
)

// Config records

type CommitmentConfig struct {
	Commitment     Commitment `json:"commitment,omitempty"`
	MinContextSlot *uint64    `json:"minContextSlot,omitempty"`
}

type DataSlice struct {
	Offset uint64 `json:"offset"`
	Length uint64 `json:"length"`
}

type GetAccountInfoConfig struct {
	Commitment     Commitment `json:"commitment,omitempty"`
	Encoding       Encoding   `json:"encoding,omitempty"`
	DataSlice      *DataSlice `json:"dataSlice,omitempty"`
	MinContextSlot *uint64    `json:"minContextSlot,omitempty"`
}

type GetBlockConfig struct {
	Commitment                     Commitment          `json:"commitment,omitempty"`
	Encoding                       TransactionEncoding `json:"encoding,omitempty"`
	TransactionDetails             TransactionDetails  `json:"transactionDetails,omitempty"`
	Rewards                        *bool               `json:"rewards,omitempty"`
	MaxSupportedTransactionVersion *uint8              `json:"maxSupportedTransactionVersion,omitempty"`
}

type SlotRange struct {
	FirstSlot uint64  `json:"firstSlot"`
	LastSlot  *uint64 `json:"lastSlot,omitempty"`
}

type GetBlockProductionConfig struct {
	Commitment Commitment `json:"commitment,omitempty"`
	Identity   *PublicKey `json:"identity,omitempty"`
	Range      *SlotRange `json:"range,omitempty"`
}

type GetInflationRewardConfig struct {
	Commitment     Commitment `json:"commitment,omitempty"`
	Epoch          *uint64    `json:"epoch,omitempty"`
	MinContextSlot *uint64    `json:"minContextSlot,omitempty"`
}

// LargestAccountsFilter restricts getLargestAccounts results.
type LargestAccountsFilter string

const (
	LargestAccountsCirculating    LargestAccountsFilter = "circulating"
	LargestAccountsNonCirculating LargestAccountsFilter = "nonCirculating"
)

type GetLargestAccountsConfig struct {
	Commitment Commitment            `json:"commitment,omitempty"`
	Filter     LargestAccountsFilter `json:"filter,omitempty"`
}

type GetLeaderScheduleConfig struct {
	Commitment Commitment `json:"commitment,omitempty"`
	Identity   *PublicKey `json:"identity,omitempty"`
}

// MemcmpFilter compares Bytes, base58 encoded unless Encoding says
// otherwise, with account data at Offset.
type MemcmpFilter struct {
	Offset   uint64   `json:"offset"`
	Bytes    string   `json:"bytes"`
	Encoding Encoding `json:"encoding,omitempty"`
}

// AccountFilter holds exactly one of DataSize or Memcmp.
type AccountFilter struct {
	DataSize *uint64       `json:"dataSize,omitempty"`
	Memcmp   *MemcmpFilter `json:"memcmp,omitempty"`
}

type GetProgramAccountsConfig struct {
	Commitment     Commitment      `json:"commitment,omitempty"`
	Encoding       Encoding        `json:"encoding,omitempty"`
	DataSlice      *DataSlice      `json:"dataSlice,omitempty"`
	Filters        []AccountFilter `json:"filters,omitempty"`
	MinContextSlot *uint64         `json:"minContextSlot,omitempty"`
}

type GetSignatureStatusesConfig struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory,omitempty"`
}

type GetSignaturesForAddressConfig struct {
	Commitment     Commitment `json:"commitment,omitempty"`
	Limit          *uint64    `json:"limit,omitempty"`
	Before         *Signature `json:"before,omitempty"`
	Until          *Signature `json:"until,omitempty"`
	MinContextSlot *uint64    `json:"minContextSlot,omitempty"`
}

type GetSupplyConfig struct {
	Commitment                        Commitment `json:"commitment,omitempty"`
	ExcludeNonCirculatingAccountsList bool       `json:"excludeNonCirculatingAccountsList,omitempty"`
}

// TokenAccountsFilter selects token accounts by exactly one of Mint or
// ProgramID.
type TokenAccountsFilter struct {
	Mint      *PublicKey `json:"mint,omitempty"`
	ProgramID *PublicKey `json:"programId,omitempty"`
}

type GetTokenAccountsConfig struct {
	Commitment     Commitment `json:"commitment,omitempty"`
	Encoding       Encoding   `json:"encoding,omitempty"`
	DataSlice      *DataSlice `json:"dataSlice,omitempty"`
	MinContextSlot *uint64    `json:"minContextSlot,omitempty"`
}

type GetTransactionConfig struct {
	Commitment                     Commitment          `json:"commitment,omitempty"`
	Encoding                       TransactionEncoding `json:"encoding,omitempty"`
	MaxSupportedTransactionVersion *uint8              `json:"maxSupportedTransactionVersion,omitempty"`
}

type GetVoteAccountsConfig struct {
	Commitment              Commitment `json:"commitment,omitempty"`
	VotePubkey              *PublicKey `json:"votePubkey,omitempty"`
	KeepUnstakedDelinquents bool       `json:"keepUnstakedDelinquents,omitempty"`
	DelinquentSlotDistance  *uint64    `json:"delinquentSlotDistance,omitempty"`
}

type SendTransactionConfig struct {
	Encoding            Encoding   `json:"encoding,omitempty"`
	SkipPreflight       bool       `json:"skipPreflight,omitempty"`
	PreflightCommitment Commitment `json:"preflightCommitment,omitempty"`
	MaxRetries          *uint      `json:"maxRetries,omitempty"`
	MinContextSlot      *uint64    `json:"minContextSlot,omitempty"`
}

type SimulateAccountsConfig struct {
	Addresses []PublicKey `json:"addresses"`
	Encoding  Encoding    `json:"encoding,omitempty"`
}

type SimulateTransactionConfig struct {
	Commitment             Commitment              `json:"commitment,omitempty"`
	Encoding               Encoding                `json:"encoding,omitempty"`
	SigVerify              bool                    `json:"sigVerify,omitempty"`
	ReplaceRecentBlockhash bool                    `json:"replaceRecentBlockhash,omitempty"`
	Accounts               *SimulateAccountsConfig `json:"accounts,omitempty"`
	MinContextSlot         *uint64                 `json:"minContextSlot,omitempty"`
	InnerInstructions      bool                    `json:"innerInstructions,omitempty"`
}

// Response records

type Context struct {
	Slot       uint64 `json:"slot"`
	APIVersion string `json:"apiVersion,omitempty"`
}

type Account struct {
	Lamports   uint64      `json:"lamports"`
	Owner      PublicKey   `json:"owner"`
	Data       AccountData `json:"data"`
	Executable bool        `json:"executable"`
	RentEpoch  uint64      `json:"rentEpoch"`
	Space      uint64      `json:"space"`
}

type AccountInfoResponse struct {
	Context Context  `json:"context"`
	Value   *Account `json:"value"`
}

type MultipleAccountsResponse struct {
	Context Context    `json:"context"`
	Value   []*Account `json:"value"`
}

type U64Response struct {
	Context Context `json:"context"`
	Value   uint64  `json:"value"`
}

type NullableU64Response struct {
	Context Context `json:"context"`
	Value   *uint64 `json:"value"`
}

type BoolResponse struct {
	Context Context `json:"context"`
	Value   bool    `json:"value"`
}

type Reward struct {
	Pubkey      PublicKey `json:"pubkey"`
	Lamports    int64     `json:"lamports"`
	PostBalance uint64    `json:"postBalance"`
	RewardType  *string   `json:"rewardType"`
	Commission  *uint8    `json:"commission"`
}

type TokenBalance struct {
	AccountIndex  int         `json:"accountIndex"`
	Mint          PublicKey   `json:"mint"`
	Owner         *PublicKey  `json:"owner,omitempty"`
	ProgramID     *PublicKey  `json:"programId,omitempty"`
	UITokenAmount TokenAmount `json:"uiTokenAmount"`
}

type LoadedAddresses struct {
	Writable []PublicKey `json:"writable"`
	Readonly []PublicKey `json:"readonly"`
}

// TransactionMeta is the status metadata of a confirmed transaction. Err is
// the raw TransactionError, null on success.
type TransactionMeta struct {
	Err                  json.RawMessage   `json:"err"`
	Fee                  uint64            `json:"fee"`
	PreBalances          []uint64          `json:"preBalances"`
	PostBalances         []uint64          `json:"postBalances"`
	InnerInstructions    []json.RawMessage `json:"innerInstructions"`
	PreTokenBalances     []TokenBalance    `json:"preTokenBalances"`
	PostTokenBalances    []TokenBalance    `json:"postTokenBalances"`
	LogMessages          []string          `json:"logMessages"`
	Rewards              []Reward          `json:"rewards"`
	LoadedAddresses      *LoadedAddresses  `json:"loadedAddresses,omitempty"`
	ComputeUnitsConsumed *uint64           `json:"computeUnitsConsumed,omitempty"`
}

// Failed reports whether the transaction failed on chain.
func (m *TransactionMeta) Failed() bool {
	return m != nil && len(m.Err) > 0 && string(m.Err) != "null"
}

// BlockTransaction holds a transaction in the encoding requested from
// getBlock; Transaction is raw for the caller to decode.
type BlockTransaction struct {
	Transaction json.RawMessage  `json:"transaction"`
	Meta        *TransactionMeta `json:"meta"`
	Version     json.RawMessage  `json:"version,omitempty"`
}

type Block struct {
	Blockhash         Hash               `json:"blockhash"`
	PreviousBlockhash Hash               `json:"previousBlockhash"`
	ParentSlot        uint64             `json:"parentSlot"`
	Transactions      []BlockTransaction `json:"transactions,omitempty"`
	Signatures        []Signature        `json:"signatures,omitempty"`
	Rewards           []Reward           `json:"rewards,omitempty"`
	BlockTime         *int64             `json:"blockTime"`
	BlockHeight       *uint64            `json:"blockHeight"`
}

type BlockCommitment struct {
	Commitment []uint64 `json:"commitment"`
	TotalStake uint64   `json:"totalStake"`
}

type BlockProductionValue struct {
	// ByIdentity maps a validator identity to [leader slots, blocks produced].
	ByIdentity map[string][2]uint64 `json:"byIdentity"`
	Range      SlotRange            `json:"range"`
}

type BlockProduction struct {
	Context Context              `json:"context"`
	Value   BlockProductionValue `json:"value"`
}

type ClusterNode struct {
	Pubkey       PublicKey `json:"pubkey"`
	Gossip       *string   `json:"gossip"`
	TPU          *string   `json:"tpu"`
	TPUQUIC      *string   `json:"tpuQuic,omitempty"`
	RPC          *string   `json:"rpc"`
	PubSub       *string   `json:"pubsub,omitempty"`
	Version      *string   `json:"version"`
	FeatureSet   *uint32   `json:"featureSet"`
	ShredVersion *uint16   `json:"shredVersion"`
}

type EpochInfo struct {
	AbsoluteSlot     uint64  `json:"absoluteSlot"`
	BlockHeight      uint64  `json:"blockHeight"`
	Epoch            uint64  `json:"epoch"`
	SlotIndex        uint64  `json:"slotIndex"`
	SlotsInEpoch     uint64  `json:"slotsInEpoch"`
	TransactionCount *uint64 `json:"transactionCount"`
}

type EpochSchedule struct {
	SlotsPerEpoch            uint64 `json:"slotsPerEpoch"`
	LeaderScheduleSlotOffset uint64 `json:"leaderScheduleSlotOffset"`
	Warmup                   bool   `json:"warmup"`
	FirstNormalEpoch         uint64 `json:"firstNormalEpoch"`
	FirstNormalSlot          uint64 `json:"firstNormalSlot"`
}

type SnapshotSlotInfo struct {
	Full        uint64  `json:"full"`
	Incremental *uint64 `json:"incremental"`
}

type Identity struct {
	Identity PublicKey `json:"identity"`
}

type InflationGovernor struct {
	Initial        float64 `json:"initial"`
	Terminal       float64 `json:"terminal"`
	Taper          float64 `json:"taper"`
	Foundation     float64 `json:"foundation"`
	FoundationTerm float64 `json:"foundationTerm"`
}

type InflationRate struct {
	Total      float64 `json:"total"`
	Validator  float64 `json:"validator"`
	Foundation float64 `json:"foundation"`
	Epoch      uint64  `json:"epoch"`
}

type InflationReward struct {
	Epoch         uint64 `json:"epoch"`
	EffectiveSlot uint64 `json:"effectiveSlot"`
	Amount        uint64 `json:"amount"`
	PostBalance   uint64 `json:"postBalance"`
	Commission    *uint8 `json:"commission"`
}

type LargestAccount struct {
	Address  PublicKey `json:"address"`
	Lamports uint64    `json:"lamports"`
}

type LargestAccountsResponse struct {
	Context Context          `json:"context"`
	Value   []LargestAccount `json:"value"`
}

type LatestBlockhash struct {
	Blockhash            Hash   `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

type LatestBlockhashResponse struct {
	Context Context         `json:"context"`
	Value   LatestBlockhash `json:"value"`
}

// LeaderSchedule maps a validator identity to the slot indices, relative to
// the first slot of the epoch, it leads.
type LeaderSchedule map[string][]uint64

type ProgramAccount struct {
	Pubkey  PublicKey `json:"pubkey"`
	Account Account   `json:"account"`
}

type PerformanceSample struct {
	Slot                   uint64  `json:"slot"`
	NumTransactions        uint64  `json:"numTransactions"`
	NumNonVoteTransactions *uint64 `json:"numNonVoteTransactions"`
	NumSlots               uint64  `json:"numSlots"`
	SamplePeriodSecs       uint16  `json:"samplePeriodSecs"`
}

type PrioritizationFee struct {
	Slot              uint64 `json:"slot"`
	PrioritizationFee uint64 `json:"prioritizationFee"`
}

type SignatureStatus struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus Commitment      `json:"confirmationStatus"`
}

type SignatureStatusesResponse struct {
	Context Context            `json:"context"`
	Value   []*SignatureStatus `json:"value"`
}

type SignatureInfo struct {
	Signature          Signature       `json:"signature"`
	Slot               uint64          `json:"slot"`
	Err                json.RawMessage `json:"err"`
	Memo               *string         `json:"memo"`
	BlockTime          *int64          `json:"blockTime"`
	ConfirmationStatus Commitment      `json:"confirmationStatus"`
}

type Supply struct {
	Total                  uint64      `json:"total"`
	Circulating            uint64      `json:"circulating"`
	NonCirculating         uint64      `json:"nonCirculating"`
	NonCirculatingAccounts []PublicKey `json:"nonCirculatingAccounts"`
}

type SupplyResponse struct {
	Context Context `json:"context"`
	Value   Supply  `json:"value"`
}

// TokenAmount is an SPL token balance. Amount is the raw integer amount as
// a string; use Decimal for exact arithmetic.
type TokenAmount struct {
	Amount         string   `json:"amount"`
	Decimals       uint8    `json:"decimals"`
	UIAmount       *float64 `json:"uiAmount"`
	UIAmountString string   `json:"uiAmountString"`
}

type TokenAmountResponse struct {
	Context Context     `json:"context"`
	Value   TokenAmount `json:"value"`
}

type TokenAccountsResponse struct {
	Context Context          `json:"context"`
	Value   []ProgramAccount `json:"value"`
}

type TokenLargestAccount struct {
	Address PublicKey `json:"address"`
	TokenAmount
}

type TokenLargestAccountsResponse struct {
	Context Context               `json:"context"`
	Value   []TokenLargestAccount `json:"value"`
}

type TransactionResult struct {
	Slot        uint64           `json:"slot"`
	Transaction json.RawMessage  `json:"transaction"`
	BlockTime   *int64           `json:"blockTime"`
	Meta        *TransactionMeta `json:"meta"`
	Version     json.RawMessage  `json:"version,omitempty"`
}

type Version struct {
	SolanaCore string `json:"solana-core"`
	FeatureSet uint32 `json:"feature-set"`
}

type VoteAccount struct {
	VotePubkey       PublicKey   `json:"votePubkey"`
	NodePubkey       PublicKey   `json:"nodePubkey"`
	ActivatedStake   uint64      `json:"activatedStake"`
	EpochVoteAccount bool        `json:"epochVoteAccount"`
	Commission       uint8       `json:"commission"`
	LastVote         uint64      `json:"lastVote"`
	EpochCredits     [][3]uint64 `json:"epochCredits"`
	RootSlot         uint64      `json:"rootSlot"`
}

type VoteAccounts struct {
	Current    []VoteAccount `json:"current"`
	Delinquent []VoteAccount `json:"delinquent"`
}

type ReturnData struct {
	ProgramID PublicKey `json:"programId"`
	// Data is [base64 data, "base64"].
	Data [2]string `json:"data"`
}

type SimulateTransactionValue struct {
	Err               json.RawMessage   `json:"err"`
	Logs              []string          `json:"logs"`
	Accounts          []*Account        `json:"accounts"`
	UnitsConsumed     *uint64           `json:"unitsConsumed"`
	ReturnData        *ReturnData       `json:"returnData"`
	InnerInstructions []json.RawMessage `json:"innerInstructions,omitempty"`
}

type SimulateTransactionResponse struct {
	Context Context                  `json:"context"`
	Value   SimulateTransactionValue `json:"value"`
}
