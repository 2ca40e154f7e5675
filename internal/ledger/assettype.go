package ledger

import "strings"

// AssetType is the coarse account category inferred from an account's
// display name.
type AssetType string

const (
	AssetTypeBank       AssetType = "bank"
	AssetTypeCredit     AssetType = "credit"
	AssetTypeInvestment AssetType = "investment"
	AssetTypeICCard     AssetType = "ic_card"
	AssetTypeQRPay      AssetType = "qr_pay"
	AssetTypeCash       AssetType = "cash"
	AssetTypeOther      AssetType = "other"
)

// assetTypeRules is the ordered keyword table for asset-type inference.
// Checked top-down, first match wins, so more specific categories
// (credit, investment) come before the broad bank fallback. The keywords are
// locale-specific by design; the table is meant to be extended as new
// institutions show up in the exports.
var assetTypeRules = []struct {
	keywords  []string
	assetType AssetType
}{
	{[]string{"カード", "クレジット", "ローン", "JCB", "VISA", "Mastercard"}, AssetTypeCredit},
	{[]string{"証券", "投信", "投資", "NISA", "iDeCo", "確定拠出", "ファンド"}, AssetTypeInvestment},
	{[]string{"Suica", "PASMO", "ICOCA", "nanaco", "WAON", "Edy"}, AssetTypeICCard},
	{[]string{"PayPay", "LINE Pay", "楽天ペイ", "d払い", "メルペイ", "au PAY"}, AssetTypeQRPay},
	{[]string{"現金", "財布", "小口"}, AssetTypeCash},
	{[]string{"銀行", "信用金庫", "信金", "ゆうちょ", "労金", "農協", "JA"}, AssetTypeBank},
}

// ClassifyAsset infers an account's category from its display name.
// Heuristic string matching; unmatched names fall through to "other".
func ClassifyAsset(accountName string) AssetType {
	for _, rule := range assetTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(accountName, kw) {
				return rule.assetType
			}
		}
	}
	return AssetTypeOther
}
