// Package prompt holds the model prompts for the assessment workflow:
// transcribing the proposal form and ECM portfolio report, mapping both to
// the underwriting worksheet, and drafting the underwriter summary.
package prompt

import (
	"fmt"
	"strconv"

	"github.com/Vkdel001/underwriter/internal/cra"
)

const proposalPrompt = `Extract ALL information from this NIC Life Insurance Proposal Form. This is a multi-page form. Be extremely careful with table structures, checkboxes, and handwritten fields.

PAGE 1 - DETAILS OF LIFE PROPOSED:
- Serial No/LID, Proposal Form number, Sales Quote No, Effective Date
- Name (Title, Surname, Other Names), Nationality, Gender, Marital Status
- Date of Birth, ID/Passport No
- Residential Address (Town/City, Country, Postal Code), Mailing Address
- Contact Details, Occupation, Company Name, Length of Service
- Height and Weight (handwritten, look carefully)
- Smoking and Alcohol status. These are TWO SEPARATE rows: never mix the
  checkbox of one row with the handwritten frequency text of the other.

PAGE 2 - CHOICE OF PLAN & FAMILY HISTORY:
- Basic Plan name, Sum Assured (MUR), Term (years), Basic Premium (MUR)
- Rider checkmarks (Additional Death, Accidental Death, TPD, Family Income,
  Critical Illness), Policy Fee, Total Premium
- Frequency of premium payment (Monthly/Quarterly/Semi-Annually/Annually/Single)
- General information Q1-Q5 with Yes/No answers. The FIRST checkbox column is
  Yes, the THIRD column (after the "or" separator) is No.
- Family history table. Living members use Present Age/Condition columns,
  deceased use Age of Death/Cause columns: never mix them for one person.

PAGE 4 - PAYER & BENEFICIARY:
- Payer details if different from Life Proposed, Relationship with Life Proposed
- Salary Range of payer (MUR), exactly one box checked:
  Below 10,000 | 10,001-25,000 | 25,001-30,000 | Above 30,000
  Report the EXACT text of the checked option.
- Source of Funds: Salary | Savings | Rent | Commission | Others
- First payment method: Cash | Cheque | PoS | Standing Order
- Premium Payment: Cash | Standing Order | Direct Debit | Check Off | Others
- Bank Name of Payer
- Beneficiary table: Surname, Other Names, Relationship to Life Proposed,
  % Share (total should equal 100%)

PAGE 5 - PERSONAL HISTORY:
- Health questions Q1-Q24 with Yes/No answers (same column rule as above)
- Diagnosis details table for any Yes answers

PAGE 6 - DECLARATION & CHECKLIST:
- Insurance Salesperson details (First Name, Code, Reporting Branch)
- Intermediary declaration, dates and signatures

QUOTATION PAGE (if present):
- From KEY BENEFITS (MUR): Death Benefit, Additional Death Benefit,
  Accidental Death Benefit, TPD, Critical Illness Benefit
- From PREMIUM DETAILS (MUR): Basic Premium, rider premiums, Total Premium
- New Policy Sum Assured = Death Benefit + Additional Death Benefit
- If quotation values differ from page 2, ALWAYS use the quotation values.

RULES:
- Dates as DD/MM/YYYY. Include "MUR" for monetary amounts.
- Note which checkboxes are checked vs unchecked.
- Format output in clear sections matching the form structure, one field per
  line as "Field Name:** value".`

const ecmPrompt = `Extract all existing policy information from this ECM Portfolio Report.

For each policy, extract:
1. Policy Number
2. Life Assured Name
3. Plan Name
4. Policy Status (Active/Expired/Lapsed/Paid-up/CFI/NPW)
5. Sum Assured (MUR amount)
6. Start Date
7. End Date
8. Premium Amount
9. Payment Frequency

Then calculate:
- Total Sum Assured for ALL ACTIVE policies only (exclude Expired, Lapsed, Paid-up, CFI, NPW)
- List each active policy with its sum assured
- Provide the aggregate total

Format as a structured list.`

const mappingPrompt = `You are mapping insurance data to an underwriting worksheet.

PROPOSAL DATA:
%s

ECM PORTFOLIO DATA (Existing Policies):
%s

MANUAL VERIFICATION DATA (User-Provided):
- PEP Status: %s
- PEP Comments: %s
- Claims History Amount: MUR %s
- Claims Comments: %s

Map this data to the underwriting worksheet fields. Extract and structure:

1. PLAN DETAILS:
   - Start Date (from Effective Date)
   - Proposal No
   - Plan Proposed (plan name)
   - Term (years)
   - Sum At Risk (Death Benefit + Additional Death)
   - Gender (M/F)
   - Riders: TPD, ADB, ACD, FIB, ACB, CI (check which are active based on premiums)

2. PERSONAL DETAILS (1st Life Assured):
   - Name
   - Occupation
   - Nationality
   - Residence
   - ANB (Age Next Birthday)
   - BMI (calculate from height/weight if available)
   - Smoking (Yes/No)
   - Alcohol (Yes/No)
   - Family History
   - Previous Cover
   - Previous Decision
   - Total Sum at Risk (from ECM: sum of all ACTIVE policies)

3. EXISTING POLICIES (from ECM):
   - List all active policies with policy numbers and sum assured
   - Calculate total existing sum assured
   - Note any with medical impairments

4. PAYMENT DETAILS:
   - Salary Range of payer
   - Source of Funds
   - Total Monthly Premium
   - Frequency of premium payment
   - Premium Payment method
   - DLP (Date of Last Payment / First Payment Date)
   - No. Of Months Paid

5. DISTRIBUTION:
   - Agent / Insurance Salesperson name
   - Beneficiary relationship to Life Proposed

6. COMPLIANCE:
   - Listed as PEP (Yes/No) - USE MANUAL VERIFICATION DATA: %s
   - Listed on AML/CFT (Yes/No)

Format as structured field mappings, one field per line as "Field Name:** value".`

const summaryPrompt = `Based on the following data, create an UNDERWRITER SUMMARY with BUSINESS RULE VALIDATION.

PROPOSAL DATA:
%s

ECM DATA (Existing Policies):
%s

CRA RISK ASSESSMENT:
%s

RULES:

1. The CRA section above is COMPLETE and FINAL. Do NOT repeat any items from
   its MANUAL VERIFICATION REQUIRED section (country risk, source of funds,
   PEP status, claims history are already assessed there).

2. HEALTH DECLARATION LOGIC:
   - Q1 "Are you presently in good health?" answered YES with all other
     questions NO means the customer is healthy. Do not flag this as an
     inconsistency.
   - Q1 answered NO, or any other question YES, should be flagged for review.

SUMMARY REQUIREMENTS:

1. EXISTING POLICIES: list all ACTIVE policies from ECM with sum assured and
   the TOTAL EXISTING SUM ASSURED (exclude Expired, Lapsed, Paid-up, CFI, NPW).

2. NEW APPLICATION: new Sum Assured requested; TOTAL SUM ASSURED = Existing +
   New. Warn if the total exceeds 11,000,000 MUR.

3. NON-MEDICAL GRID VALIDATION:
   - Total ≤ 4,000,000 MUR: proposal form only (if ANB ≤ 45)
   - Total > 4,000,000 and ≤ 11,000,000 MUR: medical examination required
   - Total > 11,000,000 MUR: exceeds limit, special approval needed

4. AGE VALIDATION: if ANB > 45, medical examination required.

5. BMI ASSESSMENT: if BMI > 33, flag for review.

6. HEALTH DECLARATION: only mention actual health issues per the rules above.

7. FAMILY HISTORY: summarize if mentioned.

8. FINAL RECOMMENDATION: standard rates / medical required / special approval,
   missing documents, and any NEW risk flags not already in the CRA.

Format clearly with warnings (⚠️) for rule violations.`

// Proposal returns the transcription prompt for the proposal form PDF.
func Proposal() string {
	return proposalPrompt
}

// ECMPortfolio returns the transcription prompt for the ECM portfolio PDF.
func ECMPortfolio() string {
	return ecmPrompt
}

// WorksheetMapping builds the prompt that maps transcribed proposal and ECM
// text onto the underwriting worksheet fields.
func WorksheetMapping(proposal, ecm string, mv cra.ManualVerification) string {
	pep := orDefault(mv.PEPStatus, "Not Checked")
	return fmt.Sprintf(mappingPrompt,
		proposal,
		ecm,
		pep,
		orDefault(mv.PEPComments, "None"),
		claimsAmount(mv),
		orDefault(mv.ClaimsComments, "None"),
		pep,
	)
}

// UnderwriterSummary builds the prompt that drafts the final underwriter
// summary from the transcriptions and the formatted CRA assessment.
func UnderwriterSummary(proposal, ecm, craSummary string) string {
	return fmt.Sprintf(summaryPrompt, proposal, ecm, craSummary)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func claimsAmount(mv cra.ManualVerification) string {
	if !mv.ClaimsChecked() {
		return "Not Checked"
	}
	return strconv.FormatFloat(*mv.ClaimsAmount, 'f', -1, 64)
}
