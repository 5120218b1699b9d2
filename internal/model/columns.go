package model

// Column headers as they appear in roster, ledger, and report spreadsheets.
const (
	ColSeq           = "연번"
	ColCategory      = "구분"
	ColName          = "성명"
	ColCity          = "시군구"
	ColDistrict      = "행정동"
	ColAddress       = "주소"
	ColAddressDetail = "세부주소"
	ColMobile        = "휴대전화번호"
	ColLandline      = "자택전화번호"
	ColQuota         = "양곡수량"
	ColBirthDate     = "생년월일"
	ColSMSOptIn      = "문자수신여부"
	ColHousehold     = "가구원수(명)"
	ColExpected      = "본인부담금액(원)"

	ColTxnDate     = "거래일자"
	ColDeposit     = "입금금액(원)"
	ColDescription = "거래기록사항"
	ColBranch      = "거래점"

	ColVerdict = "검증결과"
)

// RosterColumns is the roster schema in template order.
var RosterColumns = []string{
	ColSeq, ColCategory, ColName, ColCity, ColDistrict, ColAddress, ColAddressDetail,
	ColMobile, ColLandline, ColQuota, ColBirthDate, ColSMSOptIn, ColHousehold, ColExpected,
}

// LedgerColumns are the ledger columns the reconciliation reads.
var LedgerColumns = []string{ColTxnDate, ColDeposit, ColDescription, ColBranch}

// ReportColumns is the output layout: verdict, roster fields, then ledger fields.
var ReportColumns = []string{
	ColVerdict,
	ColSeq, ColCategory, ColName, ColCity, ColDistrict, ColAddress, ColAddressDetail,
	ColMobile, ColLandline, ColQuota, ColBirthDate, ColSMSOptIn, ColHousehold, ColExpected,
	ColDeposit, ColBranch, ColTxnDate, ColDescription,
}
