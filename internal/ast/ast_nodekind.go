package ast

// NodeKind discriminates concrete node types without relying on a type
// switch or reflection: every Node also reports one of these constants from
// Kind(), the same discriminator the analyzer passes can use for fast
// dispatch tables keyed by kind instead of by Go type.
type NodeKind int

const (
	NodeKindInvalid NodeKind = iota
	NodeKindActionBid
	NodeKindActionBidMemory
	NodeKindActionCycle
	NodeKindActionDemand
	NodeKindActionDemandMemory
	NodeKindActionEnd
	NodeKindActionFlip
	NodeKindActionMove
	NodeKindActionPlayerOutOfGameFail
	NodeKindActionPlayerOutOfGameSucc
	NodeKindActionPlayerOutOfStage
	NodeKindActionResetMemory
	NodeKindActionSetMemory
	NodeKindActionShuffle
	NodeKindAggregateBoolCardSetEmpty
	NodeKindAggregateBoolCardSetNotEmpty
	NodeKindAggregateBoolCompare
	NodeKindAggregateBoolOutOfPlayer
	NodeKindAggregateCardPositionExtremaPointMap
	NodeKindAggregateCardPositionExtremaPrecedence
	NodeKindAggregateFilterAdjacent
	NodeKindAggregateFilterCombo
	NodeKindAggregateFilterDistinct
	NodeKindAggregateFilterHigher
	NodeKindAggregateFilterKeyString
	NodeKindAggregateFilterLower
	NodeKindAggregateFilterNotCombo
	NodeKindAggregateFilterSame
	NodeKindAggregateFilterSize
	NodeKindAggregateIntExtremaCardset
	NodeKindAggregateIntExtremaIntCollection
	NodeKindAggregateIntSizeOf
	NodeKindAggregateIntSumOfCardSet
	NodeKindAggregateIntSumOfIntCollection
	NodeKindAggregatePlayerCollectionQuantifier
	NodeKindAggregatePlayerOwnerOfCardPosition
	NodeKindAggregatePlayerOwnerOfMemory
	NodeKindAggregateTeamOf
	NodeKindBoolExprAggregate
	NodeKindBoolExprBinary
	NodeKindBoolExprUnary
	NodeKindCardPositionAggregate
	NodeKindCardPositionQuery
	NodeKindCardSetGroup
	NodeKindCardSetGroupOwner
	NodeKindCaseBool
	NodeKindCaseElse
	NodeKindCaseNoBool
	NodeKindChoiceRule
	NodeKindClassicMove
	NodeKindCollectionCardSet
	NodeKindCollectionInt
	NodeKindCollectionLocation
	NodeKindCollectionPlayer
	NodeKindCollectionString
	NodeKindCollectionTeam
	NodeKindCompareBoolCardSet
	NodeKindCompareBoolInt
	NodeKindCompareBoolPlayer
	NodeKindCompareBoolString
	NodeKindCompareBoolTeam
	NodeKindConditional
	NodeKindDealMove
	NodeKindDemandTypeCardPosition
	NodeKindDemandTypeInt
	NodeKindDemandTypeString
	NodeKindEndConditionUntilBool
	NodeKindEndConditionUntilBoolRep
	NodeKindEndConditionUntilEnd
	NodeKindEndConditionUntilRep
	NodeKindEndTypeGameWithWinner
	NodeKindEndTypeStage
	NodeKindEndTypeTurn
	NodeKindExchangeMove
	NodeKindFilterExprAggregate
	NodeKindFilterExprBinary
	NodeKindFlowChoiceRule
	NodeKindFlowConditional
	NodeKindFlowIfRule
	NodeKindFlowOptionalRule
	NodeKindFlowRule
	NodeKindFlowStage
	NodeKindGame
	NodeKindGameRuleAction
	NodeKindGameRuleScoring
	NodeKindGameRuleSetUp
	NodeKindGroupCardPosition
	NodeKindGroupCombo
	NodeKindGroupGroupable
	NodeKindGroupNotCombo
	NodeKindGroupWhere
	NodeKindGroupableLocation
	NodeKindGroupableLocationCollection
	NodeKindIfRule
	NodeKindIntCollection
	NodeKindIntExprAggregate
	NodeKindIntExprBinary
	NodeKindIntExprLiteral
	NodeKindIntExprQuery
	NodeKindIntExprRuntime
	NodeKindIntRange
	NodeKindLocationCollection
	NodeKindMemoryTypeCardSet
	NodeKindMemoryTypeCollection
	NodeKindMemoryTypeInt
	NodeKindMemoryTypeString
	NodeKindMoveCardSetPlain
	NodeKindMoveCardSetQuantity
	NodeKindMoveTypeClassic
	NodeKindMoveTypeDeal
	NodeKindMoveTypeExchange
	NodeKindMoveTypePlace
	NodeKindOptionalRule
	NodeKindOutOfCurrentStage
	NodeKindOutOfGame
	NodeKindOutOfPlay
	NodeKindOutOfStage
	NodeKindOwnerPlayer
	NodeKindOwnerPlayerCollection
	NodeKindOwnerTable
	NodeKindOwnerTeam
	NodeKindOwnerTeamCollection
	NodeKindPlayerCollectionAggregate
	NodeKindPlayerCollectionLiteral
	NodeKindPlayerCollectionRuntime
	NodeKindPlayerExprAggregate
	NodeKindPlayerExprLiteral
	NodeKindPlayerExprQuery
	NodeKindPlayerExprRuntime
	NodeKindPlayersCollection
	NodeKindPlayersPlayer
	NodeKindQuantityInt
	NodeKindQuantityIntRange
	NodeKindQuantityQuantifier
	NodeKindQueryCardPositionAt
	NodeKindQueryCardPositionBottom
	NodeKindQueryCardPositionTop
	NodeKindQueryIntCollectionAt
	NodeKindQueryPlayerTurnorder
	NodeKindQueryStringCollectionAt
	NodeKindQueryStringKeyOf
	NodeKindRepetitions
	NodeKindScoreRuleScore
	NodeKindScoreRuleScoreMemory
	NodeKindScoringScore
	NodeKindScoringWinner
	NodeKindSeqStage
	NodeKindSetUpCreateCardOnLocation
	NodeKindSetUpCreateCombo
	NodeKindSetUpCreateLocation
	NodeKindSetUpCreateMemory
	NodeKindSetUpCreateMemoryWithMemoryType
	NodeKindSetUpCreatePlayer
	NodeKindSetUpCreatePointMap
	NodeKindSetUpCreatePrecedence
	NodeKindSetUpCreateTeams
	NodeKindSetUpCreateTokenOnLocation
	NodeKindSetUpCreateTurnorder
	NodeKindSetUpCreateTurnorderRandom
	NodeKindStringCollection
	NodeKindStringExprLiteral
	NodeKindStringExprQuery
	NodeKindTeamCollectionLiteral
	NodeKindTeamCollectionRuntime
	NodeKindTeamExprAggregate
	NodeKindTeamExprLiteral
	NodeKindTokenLocExprGroupable
	NodeKindTokenLocExprGroupablePlayers
	NodeKindTokenMovePlace
	NodeKindTokenMovePlaceQuantity
	NodeKindTypes
	NodeKindWinnerRuleWinner
	NodeKindWinnerRuleWinnerWith
	NodeKindWinnerTypeMemory
	NodeKindWinnerTypePosition
	NodeKindWinnerTypeScore
)

var nodeKindNames = map[NodeKind]string{
	NodeKindActionBid: "ActionBid",
	NodeKindActionBidMemory: "ActionBidMemory",
	NodeKindActionCycle: "ActionCycle",
	NodeKindActionDemand: "ActionDemand",
	NodeKindActionDemandMemory: "ActionDemandMemory",
	NodeKindActionEnd: "ActionEnd",
	NodeKindActionFlip: "ActionFlip",
	NodeKindActionMove: "ActionMove",
	NodeKindActionPlayerOutOfGameFail: "ActionPlayerOutOfGameFail",
	NodeKindActionPlayerOutOfGameSucc: "ActionPlayerOutOfGameSucc",
	NodeKindActionPlayerOutOfStage: "ActionPlayerOutOfStage",
	NodeKindActionResetMemory: "ActionResetMemory",
	NodeKindActionSetMemory: "ActionSetMemory",
	NodeKindActionShuffle: "ActionShuffle",
	NodeKindAggregateBoolCardSetEmpty: "AggregateBoolCardSetEmpty",
	NodeKindAggregateBoolCardSetNotEmpty: "AggregateBoolCardSetNotEmpty",
	NodeKindAggregateBoolCompare: "AggregateBoolCompare",
	NodeKindAggregateBoolOutOfPlayer: "AggregateBoolOutOfPlayer",
	NodeKindAggregateCardPositionExtremaPointMap: "AggregateCardPositionExtremaPointMap",
	NodeKindAggregateCardPositionExtremaPrecedence: "AggregateCardPositionExtremaPrecedence",
	NodeKindAggregateFilterAdjacent: "AggregateFilterAdjacent",
	NodeKindAggregateFilterCombo: "AggregateFilterCombo",
	NodeKindAggregateFilterDistinct: "AggregateFilterDistinct",
	NodeKindAggregateFilterHigher: "AggregateFilterHigher",
	NodeKindAggregateFilterKeyString: "AggregateFilterKeyString",
	NodeKindAggregateFilterLower: "AggregateFilterLower",
	NodeKindAggregateFilterNotCombo: "AggregateFilterNotCombo",
	NodeKindAggregateFilterSame: "AggregateFilterSame",
	NodeKindAggregateFilterSize: "AggregateFilterSize",
	NodeKindAggregateIntExtremaCardset: "AggregateIntExtremaCardset",
	NodeKindAggregateIntExtremaIntCollection: "AggregateIntExtremaIntCollection",
	NodeKindAggregateIntSizeOf: "AggregateIntSizeOf",
	NodeKindAggregateIntSumOfCardSet: "AggregateIntSumOfCardSet",
	NodeKindAggregateIntSumOfIntCollection: "AggregateIntSumOfIntCollection",
	NodeKindAggregatePlayerCollectionQuantifier: "AggregatePlayerCollectionQuantifier",
	NodeKindAggregatePlayerOwnerOfCardPosition: "AggregatePlayerOwnerOfCardPosition",
	NodeKindAggregatePlayerOwnerOfMemory: "AggregatePlayerOwnerOfMemory",
	NodeKindAggregateTeamOf: "AggregateTeamOf",
	NodeKindBoolExprAggregate: "BoolExprAggregate",
	NodeKindBoolExprBinary: "BoolExprBinary",
	NodeKindBoolExprUnary: "BoolExprUnary",
	NodeKindCardPositionAggregate: "CardPositionAggregate",
	NodeKindCardPositionQuery: "CardPositionQuery",
	NodeKindCardSetGroup: "CardSetGroup",
	NodeKindCardSetGroupOwner: "CardSetGroupOwner",
	NodeKindCaseBool: "CaseBool",
	NodeKindCaseElse: "CaseElse",
	NodeKindCaseNoBool: "CaseNoBool",
	NodeKindChoiceRule: "ChoiceRule",
	NodeKindClassicMove: "ClassicMove",
	NodeKindCollectionCardSet: "CollectionCardSet",
	NodeKindCollectionInt: "CollectionInt",
	NodeKindCollectionLocation: "CollectionLocation",
	NodeKindCollectionPlayer: "CollectionPlayer",
	NodeKindCollectionString: "CollectionString",
	NodeKindCollectionTeam: "CollectionTeam",
	NodeKindCompareBoolCardSet: "CompareBoolCardSet",
	NodeKindCompareBoolInt: "CompareBoolInt",
	NodeKindCompareBoolPlayer: "CompareBoolPlayer",
	NodeKindCompareBoolString: "CompareBoolString",
	NodeKindCompareBoolTeam: "CompareBoolTeam",
	NodeKindConditional: "Conditional",
	NodeKindDealMove: "DealMove",
	NodeKindDemandTypeCardPosition: "DemandTypeCardPosition",
	NodeKindDemandTypeInt: "DemandTypeInt",
	NodeKindDemandTypeString: "DemandTypeString",
	NodeKindEndConditionUntilBool: "EndConditionUntilBool",
	NodeKindEndConditionUntilBoolRep: "EndConditionUntilBoolRep",
	NodeKindEndConditionUntilEnd: "EndConditionUntilEnd",
	NodeKindEndConditionUntilRep: "EndConditionUntilRep",
	NodeKindEndTypeGameWithWinner: "EndTypeGameWithWinner",
	NodeKindEndTypeStage: "EndTypeStage",
	NodeKindEndTypeTurn: "EndTypeTurn",
	NodeKindExchangeMove: "ExchangeMove",
	NodeKindFilterExprAggregate: "FilterExprAggregate",
	NodeKindFilterExprBinary: "FilterExprBinary",
	NodeKindFlowChoiceRule: "FlowChoiceRule",
	NodeKindFlowConditional: "FlowConditional",
	NodeKindFlowIfRule: "FlowIfRule",
	NodeKindFlowOptionalRule: "FlowOptionalRule",
	NodeKindFlowRule: "FlowRule",
	NodeKindFlowStage: "FlowStage",
	NodeKindGame: "Game",
	NodeKindGameRuleAction: "GameRuleAction",
	NodeKindGameRuleScoring: "GameRuleScoring",
	NodeKindGameRuleSetUp: "GameRuleSetUp",
	NodeKindGroupCardPosition: "GroupCardPosition",
	NodeKindGroupCombo: "GroupCombo",
	NodeKindGroupGroupable: "GroupGroupable",
	NodeKindGroupNotCombo: "GroupNotCombo",
	NodeKindGroupWhere: "GroupWhere",
	NodeKindGroupableLocation: "GroupableLocation",
	NodeKindGroupableLocationCollection: "GroupableLocationCollection",
	NodeKindIfRule: "IfRule",
	NodeKindIntCollection: "IntCollection",
	NodeKindIntExprAggregate: "IntExprAggregate",
	NodeKindIntExprBinary: "IntExprBinary",
	NodeKindIntExprLiteral: "IntExprLiteral",
	NodeKindIntExprQuery: "IntExprQuery",
	NodeKindIntExprRuntime: "IntExprRuntime",
	NodeKindIntRange: "IntRange",
	NodeKindLocationCollection: "LocationCollection",
	NodeKindMemoryTypeCardSet: "MemoryTypeCardSet",
	NodeKindMemoryTypeCollection: "MemoryTypeCollection",
	NodeKindMemoryTypeInt: "MemoryTypeInt",
	NodeKindMemoryTypeString: "MemoryTypeString",
	NodeKindMoveCardSetPlain: "MoveCardSetPlain",
	NodeKindMoveCardSetQuantity: "MoveCardSetQuantity",
	NodeKindMoveTypeClassic: "MoveTypeClassic",
	NodeKindMoveTypeDeal: "MoveTypeDeal",
	NodeKindMoveTypeExchange: "MoveTypeExchange",
	NodeKindMoveTypePlace: "MoveTypePlace",
	NodeKindOptionalRule: "OptionalRule",
	NodeKindOutOfCurrentStage: "OutOfCurrentStage",
	NodeKindOutOfGame: "OutOfGame",
	NodeKindOutOfPlay: "OutOfPlay",
	NodeKindOutOfStage: "OutOfStage",
	NodeKindOwnerPlayer: "OwnerPlayer",
	NodeKindOwnerPlayerCollection: "OwnerPlayerCollection",
	NodeKindOwnerTable: "OwnerTable",
	NodeKindOwnerTeam: "OwnerTeam",
	NodeKindOwnerTeamCollection: "OwnerTeamCollection",
	NodeKindPlayerCollectionAggregate: "PlayerCollectionAggregate",
	NodeKindPlayerCollectionLiteral: "PlayerCollectionLiteral",
	NodeKindPlayerCollectionRuntime: "PlayerCollectionRuntime",
	NodeKindPlayerExprAggregate: "PlayerExprAggregate",
	NodeKindPlayerExprLiteral: "PlayerExprLiteral",
	NodeKindPlayerExprQuery: "PlayerExprQuery",
	NodeKindPlayerExprRuntime: "PlayerExprRuntime",
	NodeKindPlayersCollection: "PlayersCollection",
	NodeKindPlayersPlayer: "PlayersPlayer",
	NodeKindQuantityInt: "QuantityInt",
	NodeKindQuantityIntRange: "QuantityIntRange",
	NodeKindQuantityQuantifier: "QuantityQuantifier",
	NodeKindQueryCardPositionAt: "QueryCardPositionAt",
	NodeKindQueryCardPositionBottom: "QueryCardPositionBottom",
	NodeKindQueryCardPositionTop: "QueryCardPositionTop",
	NodeKindQueryIntCollectionAt: "QueryIntCollectionAt",
	NodeKindQueryPlayerTurnorder: "QueryPlayerTurnorder",
	NodeKindQueryStringCollectionAt: "QueryStringCollectionAt",
	NodeKindQueryStringKeyOf: "QueryStringKeyOf",
	NodeKindRepetitions: "Repetitions",
	NodeKindScoreRuleScore: "ScoreRuleScore",
	NodeKindScoreRuleScoreMemory: "ScoreRuleScoreMemory",
	NodeKindScoringScore: "ScoringScore",
	NodeKindScoringWinner: "ScoringWinner",
	NodeKindSeqStage: "SeqStage",
	NodeKindSetUpCreateCardOnLocation: "SetUpCreateCardOnLocation",
	NodeKindSetUpCreateCombo: "SetUpCreateCombo",
	NodeKindSetUpCreateLocation: "SetUpCreateLocation",
	NodeKindSetUpCreateMemory: "SetUpCreateMemory",
	NodeKindSetUpCreateMemoryWithMemoryType: "SetUpCreateMemoryWithMemoryType",
	NodeKindSetUpCreatePlayer: "SetUpCreatePlayer",
	NodeKindSetUpCreatePointMap: "SetUpCreatePointMap",
	NodeKindSetUpCreatePrecedence: "SetUpCreatePrecedence",
	NodeKindSetUpCreateTeams: "SetUpCreateTeams",
	NodeKindSetUpCreateTokenOnLocation: "SetUpCreateTokenOnLocation",
	NodeKindSetUpCreateTurnorder: "SetUpCreateTurnorder",
	NodeKindSetUpCreateTurnorderRandom: "SetUpCreateTurnorderRandom",
	NodeKindStringCollection: "StringCollection",
	NodeKindStringExprLiteral: "StringExprLiteral",
	NodeKindStringExprQuery: "StringExprQuery",
	NodeKindTeamCollectionLiteral: "TeamCollectionLiteral",
	NodeKindTeamCollectionRuntime: "TeamCollectionRuntime",
	NodeKindTeamExprAggregate: "TeamExprAggregate",
	NodeKindTeamExprLiteral: "TeamExprLiteral",
	NodeKindTokenLocExprGroupable: "TokenLocExprGroupable",
	NodeKindTokenLocExprGroupablePlayers: "TokenLocExprGroupablePlayers",
	NodeKindTokenMovePlace: "TokenMovePlace",
	NodeKindTokenMovePlaceQuantity: "TokenMovePlaceQuantity",
	NodeKindTypes: "Types",
	NodeKindWinnerRuleWinner: "WinnerRuleWinner",
	NodeKindWinnerRuleWinnerWith: "WinnerRuleWinnerWith",
	NodeKindWinnerTypeMemory: "WinnerTypeMemory",
	NodeKindWinnerTypePosition: "WinnerTypePosition",
	NodeKindWinnerTypeScore: "WinnerTypeScore",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "Invalid"
}

func (ActionBid) Kind() NodeKind { return NodeKindActionBid }
func (ActionBidMemory) Kind() NodeKind { return NodeKindActionBidMemory }
func (ActionCycle) Kind() NodeKind { return NodeKindActionCycle }
func (ActionDemand) Kind() NodeKind { return NodeKindActionDemand }
func (ActionDemandMemory) Kind() NodeKind { return NodeKindActionDemandMemory }
func (ActionEnd) Kind() NodeKind { return NodeKindActionEnd }
func (ActionFlip) Kind() NodeKind { return NodeKindActionFlip }
func (ActionMove) Kind() NodeKind { return NodeKindActionMove }
func (ActionPlayerOutOfGameFail) Kind() NodeKind { return NodeKindActionPlayerOutOfGameFail }
func (ActionPlayerOutOfGameSucc) Kind() NodeKind { return NodeKindActionPlayerOutOfGameSucc }
func (ActionPlayerOutOfStage) Kind() NodeKind { return NodeKindActionPlayerOutOfStage }
func (ActionResetMemory) Kind() NodeKind { return NodeKindActionResetMemory }
func (ActionSetMemory) Kind() NodeKind { return NodeKindActionSetMemory }
func (ActionShuffle) Kind() NodeKind { return NodeKindActionShuffle }
func (AggregateBoolCardSetEmpty) Kind() NodeKind { return NodeKindAggregateBoolCardSetEmpty }
func (AggregateBoolCardSetNotEmpty) Kind() NodeKind { return NodeKindAggregateBoolCardSetNotEmpty }
func (AggregateBoolCompare) Kind() NodeKind { return NodeKindAggregateBoolCompare }
func (AggregateBoolOutOfPlayer) Kind() NodeKind { return NodeKindAggregateBoolOutOfPlayer }
func (AggregateCardPositionExtremaPointMap) Kind() NodeKind { return NodeKindAggregateCardPositionExtremaPointMap }
func (AggregateCardPositionExtremaPrecedence) Kind() NodeKind { return NodeKindAggregateCardPositionExtremaPrecedence }
func (AggregateFilterAdjacent) Kind() NodeKind { return NodeKindAggregateFilterAdjacent }
func (AggregateFilterCombo) Kind() NodeKind { return NodeKindAggregateFilterCombo }
func (AggregateFilterDistinct) Kind() NodeKind { return NodeKindAggregateFilterDistinct }
func (AggregateFilterHigher) Kind() NodeKind { return NodeKindAggregateFilterHigher }
func (AggregateFilterKeyString) Kind() NodeKind { return NodeKindAggregateFilterKeyString }
func (AggregateFilterLower) Kind() NodeKind { return NodeKindAggregateFilterLower }
func (AggregateFilterNotCombo) Kind() NodeKind { return NodeKindAggregateFilterNotCombo }
func (AggregateFilterSame) Kind() NodeKind { return NodeKindAggregateFilterSame }
func (AggregateFilterSize) Kind() NodeKind { return NodeKindAggregateFilterSize }
func (AggregateIntExtremaCardset) Kind() NodeKind { return NodeKindAggregateIntExtremaCardset }
func (AggregateIntExtremaIntCollection) Kind() NodeKind { return NodeKindAggregateIntExtremaIntCollection }
func (AggregateIntSizeOf) Kind() NodeKind { return NodeKindAggregateIntSizeOf }
func (AggregateIntSumOfCardSet) Kind() NodeKind { return NodeKindAggregateIntSumOfCardSet }
func (AggregateIntSumOfIntCollection) Kind() NodeKind { return NodeKindAggregateIntSumOfIntCollection }
func (AggregatePlayerCollectionQuantifier) Kind() NodeKind { return NodeKindAggregatePlayerCollectionQuantifier }
func (AggregatePlayerOwnerOfCardPosition) Kind() NodeKind { return NodeKindAggregatePlayerOwnerOfCardPosition }
func (AggregatePlayerOwnerOfMemory) Kind() NodeKind { return NodeKindAggregatePlayerOwnerOfMemory }
func (AggregateTeamOf) Kind() NodeKind { return NodeKindAggregateTeamOf }
func (BoolExprAggregate) Kind() NodeKind { return NodeKindBoolExprAggregate }
func (BoolExprBinary) Kind() NodeKind { return NodeKindBoolExprBinary }
func (BoolExprUnary) Kind() NodeKind { return NodeKindBoolExprUnary }
func (CardPositionAggregate) Kind() NodeKind { return NodeKindCardPositionAggregate }
func (CardPositionQuery) Kind() NodeKind { return NodeKindCardPositionQuery }
func (CardSetGroup) Kind() NodeKind { return NodeKindCardSetGroup }
func (CardSetGroupOwner) Kind() NodeKind { return NodeKindCardSetGroupOwner }
func (CaseBool) Kind() NodeKind { return NodeKindCaseBool }
func (CaseElse) Kind() NodeKind { return NodeKindCaseElse }
func (CaseNoBool) Kind() NodeKind { return NodeKindCaseNoBool }
func (ChoiceRule) Kind() NodeKind { return NodeKindChoiceRule }
func (ClassicMove) Kind() NodeKind { return NodeKindClassicMove }
func (CollectionCardSet) Kind() NodeKind { return NodeKindCollectionCardSet }
func (CollectionInt) Kind() NodeKind { return NodeKindCollectionInt }
func (CollectionLocation) Kind() NodeKind { return NodeKindCollectionLocation }
func (CollectionPlayer) Kind() NodeKind { return NodeKindCollectionPlayer }
func (CollectionString) Kind() NodeKind { return NodeKindCollectionString }
func (CollectionTeam) Kind() NodeKind { return NodeKindCollectionTeam }
func (CompareBoolCardSet) Kind() NodeKind { return NodeKindCompareBoolCardSet }
func (CompareBoolInt) Kind() NodeKind { return NodeKindCompareBoolInt }
func (CompareBoolPlayer) Kind() NodeKind { return NodeKindCompareBoolPlayer }
func (CompareBoolString) Kind() NodeKind { return NodeKindCompareBoolString }
func (CompareBoolTeam) Kind() NodeKind { return NodeKindCompareBoolTeam }
func (Conditional) Kind() NodeKind { return NodeKindConditional }
func (DealMove) Kind() NodeKind { return NodeKindDealMove }
func (DemandTypeCardPosition) Kind() NodeKind { return NodeKindDemandTypeCardPosition }
func (DemandTypeInt) Kind() NodeKind { return NodeKindDemandTypeInt }
func (DemandTypeString) Kind() NodeKind { return NodeKindDemandTypeString }
func (EndConditionUntilBool) Kind() NodeKind { return NodeKindEndConditionUntilBool }
func (EndConditionUntilBoolRep) Kind() NodeKind { return NodeKindEndConditionUntilBoolRep }
func (EndConditionUntilEnd) Kind() NodeKind { return NodeKindEndConditionUntilEnd }
func (EndConditionUntilRep) Kind() NodeKind { return NodeKindEndConditionUntilRep }
func (EndTypeGameWithWinner) Kind() NodeKind { return NodeKindEndTypeGameWithWinner }
func (EndTypeStage) Kind() NodeKind { return NodeKindEndTypeStage }
func (EndTypeTurn) Kind() NodeKind { return NodeKindEndTypeTurn }
func (ExchangeMove) Kind() NodeKind { return NodeKindExchangeMove }
func (FilterExprAggregate) Kind() NodeKind { return NodeKindFilterExprAggregate }
func (FilterExprBinary) Kind() NodeKind { return NodeKindFilterExprBinary }
func (FlowChoiceRule) Kind() NodeKind { return NodeKindFlowChoiceRule }
func (FlowConditional) Kind() NodeKind { return NodeKindFlowConditional }
func (FlowIfRule) Kind() NodeKind { return NodeKindFlowIfRule }
func (FlowOptionalRule) Kind() NodeKind { return NodeKindFlowOptionalRule }
func (FlowRule) Kind() NodeKind { return NodeKindFlowRule }
func (FlowStage) Kind() NodeKind { return NodeKindFlowStage }
func (Game) Kind() NodeKind { return NodeKindGame }
func (GameRuleAction) Kind() NodeKind { return NodeKindGameRuleAction }
func (GameRuleScoring) Kind() NodeKind { return NodeKindGameRuleScoring }
func (GameRuleSetUp) Kind() NodeKind { return NodeKindGameRuleSetUp }
func (GroupCardPosition) Kind() NodeKind { return NodeKindGroupCardPosition }
func (GroupCombo) Kind() NodeKind { return NodeKindGroupCombo }
func (GroupGroupable) Kind() NodeKind { return NodeKindGroupGroupable }
func (GroupNotCombo) Kind() NodeKind { return NodeKindGroupNotCombo }
func (GroupWhere) Kind() NodeKind { return NodeKindGroupWhere }
func (GroupableLocation) Kind() NodeKind { return NodeKindGroupableLocation }
func (GroupableLocationCollection) Kind() NodeKind { return NodeKindGroupableLocationCollection }
func (IfRule) Kind() NodeKind { return NodeKindIfRule }
func (IntCollection) Kind() NodeKind { return NodeKindIntCollection }
func (IntExprAggregate) Kind() NodeKind { return NodeKindIntExprAggregate }
func (IntExprBinary) Kind() NodeKind { return NodeKindIntExprBinary }
func (IntExprLiteral) Kind() NodeKind { return NodeKindIntExprLiteral }
func (IntExprQuery) Kind() NodeKind { return NodeKindIntExprQuery }
func (IntExprRuntime) Kind() NodeKind { return NodeKindIntExprRuntime }
func (IntRange) Kind() NodeKind { return NodeKindIntRange }
func (LocationCollection) Kind() NodeKind { return NodeKindLocationCollection }
func (MemoryTypeCardSet) Kind() NodeKind { return NodeKindMemoryTypeCardSet }
func (MemoryTypeCollection) Kind() NodeKind { return NodeKindMemoryTypeCollection }
func (MemoryTypeInt) Kind() NodeKind { return NodeKindMemoryTypeInt }
func (MemoryTypeString) Kind() NodeKind { return NodeKindMemoryTypeString }
func (MoveCardSetPlain) Kind() NodeKind { return NodeKindMoveCardSetPlain }
func (MoveCardSetQuantity) Kind() NodeKind { return NodeKindMoveCardSetQuantity }
func (MoveTypeClassic) Kind() NodeKind { return NodeKindMoveTypeClassic }
func (MoveTypeDeal) Kind() NodeKind { return NodeKindMoveTypeDeal }
func (MoveTypeExchange) Kind() NodeKind { return NodeKindMoveTypeExchange }
func (MoveTypePlace) Kind() NodeKind { return NodeKindMoveTypePlace }
func (OptionalRule) Kind() NodeKind { return NodeKindOptionalRule }
func (OutOfCurrentStage) Kind() NodeKind { return NodeKindOutOfCurrentStage }
func (OutOfGame) Kind() NodeKind { return NodeKindOutOfGame }
func (OutOfPlay) Kind() NodeKind { return NodeKindOutOfPlay }
func (OutOfStage) Kind() NodeKind { return NodeKindOutOfStage }
func (OwnerPlayer) Kind() NodeKind { return NodeKindOwnerPlayer }
func (OwnerPlayerCollection) Kind() NodeKind { return NodeKindOwnerPlayerCollection }
func (OwnerTable) Kind() NodeKind { return NodeKindOwnerTable }
func (OwnerTeam) Kind() NodeKind { return NodeKindOwnerTeam }
func (OwnerTeamCollection) Kind() NodeKind { return NodeKindOwnerTeamCollection }
func (PlayerCollectionAggregate) Kind() NodeKind { return NodeKindPlayerCollectionAggregate }
func (PlayerCollectionLiteral) Kind() NodeKind { return NodeKindPlayerCollectionLiteral }
func (PlayerCollectionRuntime) Kind() NodeKind { return NodeKindPlayerCollectionRuntime }
func (PlayerExprAggregate) Kind() NodeKind { return NodeKindPlayerExprAggregate }
func (PlayerExprLiteral) Kind() NodeKind { return NodeKindPlayerExprLiteral }
func (PlayerExprQuery) Kind() NodeKind { return NodeKindPlayerExprQuery }
func (PlayerExprRuntime) Kind() NodeKind { return NodeKindPlayerExprRuntime }
func (PlayersCollection) Kind() NodeKind { return NodeKindPlayersCollection }
func (PlayersPlayer) Kind() NodeKind { return NodeKindPlayersPlayer }
func (QuantityInt) Kind() NodeKind { return NodeKindQuantityInt }
func (QuantityIntRange) Kind() NodeKind { return NodeKindQuantityIntRange }
func (QuantityQuantifier) Kind() NodeKind { return NodeKindQuantityQuantifier }
func (QueryCardPositionAt) Kind() NodeKind { return NodeKindQueryCardPositionAt }
func (QueryCardPositionBottom) Kind() NodeKind { return NodeKindQueryCardPositionBottom }
func (QueryCardPositionTop) Kind() NodeKind { return NodeKindQueryCardPositionTop }
func (QueryIntCollectionAt) Kind() NodeKind { return NodeKindQueryIntCollectionAt }
func (QueryPlayerTurnorder) Kind() NodeKind { return NodeKindQueryPlayerTurnorder }
func (QueryStringCollectionAt) Kind() NodeKind { return NodeKindQueryStringCollectionAt }
func (QueryStringKeyOf) Kind() NodeKind { return NodeKindQueryStringKeyOf }
func (Repetitions) Kind() NodeKind { return NodeKindRepetitions }
func (ScoreRuleScore) Kind() NodeKind { return NodeKindScoreRuleScore }
func (ScoreRuleScoreMemory) Kind() NodeKind { return NodeKindScoreRuleScoreMemory }
func (ScoringScore) Kind() NodeKind { return NodeKindScoringScore }
func (ScoringWinner) Kind() NodeKind { return NodeKindScoringWinner }
func (SeqStage) Kind() NodeKind { return NodeKindSeqStage }
func (SetUpCreateCardOnLocation) Kind() NodeKind { return NodeKindSetUpCreateCardOnLocation }
func (SetUpCreateCombo) Kind() NodeKind { return NodeKindSetUpCreateCombo }
func (SetUpCreateLocation) Kind() NodeKind { return NodeKindSetUpCreateLocation }
func (SetUpCreateMemory) Kind() NodeKind { return NodeKindSetUpCreateMemory }
func (SetUpCreateMemoryWithMemoryType) Kind() NodeKind { return NodeKindSetUpCreateMemoryWithMemoryType }
func (SetUpCreatePlayer) Kind() NodeKind { return NodeKindSetUpCreatePlayer }
func (SetUpCreatePointMap) Kind() NodeKind { return NodeKindSetUpCreatePointMap }
func (SetUpCreatePrecedence) Kind() NodeKind { return NodeKindSetUpCreatePrecedence }
func (SetUpCreateTeams) Kind() NodeKind { return NodeKindSetUpCreateTeams }
func (SetUpCreateTokenOnLocation) Kind() NodeKind { return NodeKindSetUpCreateTokenOnLocation }
func (SetUpCreateTurnorder) Kind() NodeKind { return NodeKindSetUpCreateTurnorder }
func (SetUpCreateTurnorderRandom) Kind() NodeKind { return NodeKindSetUpCreateTurnorderRandom }
func (StringCollection) Kind() NodeKind { return NodeKindStringCollection }
func (StringExprLiteral) Kind() NodeKind { return NodeKindStringExprLiteral }
func (StringExprQuery) Kind() NodeKind { return NodeKindStringExprQuery }
func (TeamCollectionLiteral) Kind() NodeKind { return NodeKindTeamCollectionLiteral }
func (TeamCollectionRuntime) Kind() NodeKind { return NodeKindTeamCollectionRuntime }
func (TeamExprAggregate) Kind() NodeKind { return NodeKindTeamExprAggregate }
func (TeamExprLiteral) Kind() NodeKind { return NodeKindTeamExprLiteral }
func (TokenLocExprGroupable) Kind() NodeKind { return NodeKindTokenLocExprGroupable }
func (TokenLocExprGroupablePlayers) Kind() NodeKind { return NodeKindTokenLocExprGroupablePlayers }
func (TokenMovePlace) Kind() NodeKind { return NodeKindTokenMovePlace }
func (TokenMovePlaceQuantity) Kind() NodeKind { return NodeKindTokenMovePlaceQuantity }
func (Types) Kind() NodeKind { return NodeKindTypes }
func (WinnerRuleWinner) Kind() NodeKind { return NodeKindWinnerRuleWinner }
func (WinnerRuleWinnerWith) Kind() NodeKind { return NodeKindWinnerRuleWinnerWith }
func (WinnerTypeMemory) Kind() NodeKind { return NodeKindWinnerTypeMemory }
func (WinnerTypePosition) Kind() NodeKind { return NodeKindWinnerTypePosition }
func (WinnerTypeScore) Kind() NodeKind { return NodeKindWinnerTypeScore }
