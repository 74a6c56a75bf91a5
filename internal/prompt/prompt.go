// Package prompt renders the two stage prompts from company data. Renderers
// are pure: same inputs always produce the same output.
package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/prepsheet-cli/internal/model"
)

// Fit score rubric point weights. Fixed so scores are comparable across
// companies and across runs.
const (
	WeightFunding     = 25 // Series B+ funding or $25M+ total raised
	WeightActiveUsers = 20 // 1M+ monthly active users (web + app)
	WeightAITooling   = 20 // existing AI/ML tools in the tech stack
	WeightAIHiring    = 15 // 5+ AI-related job openings
	WeightAILaunches  = 10 // recent AI product launches or announcements
	WeightCloudInfra  = 10 // enterprise cloud infrastructure
)

var printer = message.NewPrinter(language.English)

// FormatCount renders a count with thousands separators, matching how the
// figures appear in the source dataset.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

func scoringRubric() string {
	return fmt.Sprintf(`## Scoring Methodology:
- +%d points: Series B+ funding OR $25M+ total raised
- +%d points: 1M+ monthly active users (web + app)
- +%d points: Existing AI/ML tools in tech stack
- +%d points: 5+ AI-related job openings
- +%d points: Recent AI product launches or announcements
- +%d points: Enterprise cloud infrastructure (AWS/GCP/Azure)`,
		WeightFunding, WeightActiveUsers, WeightAITooling,
		WeightAIHiring, WeightAILaunches, WeightCloudInfra)
}

// ResearchTask is the user-role request paired with the research
// instructions.
func ResearchTask(companyName string) string {
	return fmt.Sprintf("Conduct comprehensive research on %s and generate a detailed preparation sheet using web search.", companyName)
}

// BuildResearchPrompt renders the stage-1 instructions for the
// search-augmented model. The output structure is fixed so downstream
// consumers can rely on section identity across runs.
func BuildResearchPrompt(rec model.CompanyRecord) string {
	var footprint string
	if rec.Verified() {
		footprint = fmt.Sprintf("%s monthly visits / %s app downloads (verified from internal data)",
			FormatCount(rec.MonthlyVisits), FormatCount(rec.AppDownloads))
	} else {
		footprint = "[UNVERIFIED — discover monthly visits and app downloads via web search]"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are an expert AI sales research analyst. Generate a comprehensive executive preparation sheet for AI platform sales prospects.

## Research Requirements:
1. **Company Intelligence**: Search for company background, size, headquarters, key markets
2. **Technology Analysis**: Identify tech stack, cloud providers, AI/ML tools currently used
3. **Funding & Growth**: Find latest funding rounds, valuation, growth metrics, investor information
4. **AI Readiness**: Look for AI initiatives, job postings mentioning AI/ML, existing AI products
5. **Digital Presence**: Verify traffic data and app performance metrics
6. **Competitive Position**: Research market position and key competitors

## Output Format (use exactly this structure):
# Prep Sheet – %s

## 1. Fast Facts
- **HQ / Key markets:** [location and key markets]
- **Employees / Engineers:** [headcount with engineering team size if available]
- **Funding:** [latest round, date, total raised, key investors]
- **Digital Footprint:** %s

## 2. Tech Stack
| Layer | Detected Tools |
|-------|----------------|
| Cloud | [AWS/GCP/Azure and specific services] |
| Backend | [programming languages, frameworks, databases] |
| AI / Analytics | [AI platforms, ML frameworks, analytics tools] |

## 3. AI-Readiness Signals
- [Signal 1: existing AI initiatives, products, or features]
- [Signal 2: AI-related job postings or team growth]
- [Signal 3: technology partnerships or integrations]
- [Signal 4: public statements about AI strategy]

## 4. Potential AI Platform Use Cases
1. **[Use Case 1]**: [Specific application based on their business model]
2. **[Use Case 2]**: [Customer-facing or internal efficiency opportunity]
3. **[Use Case 3]**: [Innovation or competitive advantage opportunity]

## 5. Discovery Questions
- "[Question about their current AI initiatives or challenges]"
- "[Question about specific use case identified above]"
- "[Question about technical implementation or integration needs]"

**Fit Score:** [0-100] / 100 → *[High/Medium/Low] propensity*

%s

## Research Quality Standards:
- Use BuiltWith, Crunchbase, SimilarWeb, company websites, and reputable tech press
- Include inline citations with source links
- Prioritize recent data (last 12 months)
- Be specific with numbers, dates, and sources
- If data unavailable, state "Data not found" rather than speculate

**Company:** %s
**Website:** %s
**Domain:** %s

`, rec.Name, footprint, scoringRubric(), rec.Name, rec.Website, rec.Domain())

	if rec.Verified() {
		fmt.Fprintf(&sb, `**Verified Internal Data:**
- Monthly Website Visits: %s
- App Downloads (Last 30 Days): %s

`, FormatCount(rec.MonthlyVisits), FormatCount(rec.AppDownloads))
	} else {
		sb.WriteString(`**Internal Data: UNVERIFIED**
This company did not match our verified dataset. The traffic and app download
figures are unknown, not zero — independently discover them via web search and
clearly mark any figure you cannot confirm as "Data not found".

`)
	}

	fmt.Fprintf(&sb, "Research this company thoroughly using web search and generate a detailed preparation sheet. Focus on their technology stack, AI readiness, funding status, and potential AI platform use cases.")

	return sb.String()
}

// BuildEnhancementPrompt renders the stage-2 instructions for the reasoning
// model. The stage-1 report is embedded verbatim as context.
func BuildEnhancementPrompt(rec model.CompanyRecord, researchReport string) string {
	var visits, downloads string
	if rec.Verified() {
		visits = FormatCount(rec.MonthlyVisits)
		downloads = FormatCount(rec.AppDownloads)
	} else {
		visits = "UNVERIFIED"
		downloads = "UNVERIFIED"
	}

	return fmt.Sprintf(`You are an expert AI sales strategist and analyst. You have been provided with a comprehensive preparation sheet created by a research model with web search. Your task is to enhance, refine, and improve this prep sheet using your advanced reasoning capabilities.

**ENHANCEMENT OBJECTIVES:**
1. **Analytical Depth**: Add deeper strategic insights and analysis
2. **Data Synthesis**: Better synthesize the information for executive consumption
3. **Strategic Recommendations**: Enhance the AI platform use cases with more sophisticated reasoning
4. **Gap Filling**: Fill any missing information using your knowledge base
5. **Executive Polish**: Make the content more executive-ready and actionable

**ORIGINAL COMPANY DATA:**
- Company: %s
- Website: %s
- Monthly Website Visits: %s
- App Downloads (Last 30 Days): %s

**RESEARCH PREP SHEET TO ENHANCE:**
%s

**ENHANCEMENT INSTRUCTIONS:**
1. **Keep the same format structure** - don't change the overall layout
2. **Improve the analysis quality** - add deeper insights where possible
3. **Enhance strategic recommendations** - make the use cases more compelling
4. **Fill knowledge gaps** - if the research missed something you know, add it
5. **Improve scoring rationale** - provide more detailed fit score reasoning against the methodology below
6. **Enhance discovery questions** - make them more targeted and valuable
7. **Preserve source links** - keep all the web search citations from the research stage

%s

**OUTPUT FORMAT:**
Enhance the existing prep sheet while maintaining the same structure, then append exactly one new section at the end:

## 6. Executive Summary & Strategic Implications
**Strategic Context:** [Market positioning and competitive landscape insights]
**Technical Readiness:** [Assessment of their ability to adopt an AI platform]
**Business Impact Potential:** [Quantified value propositions where possible]
**Recommended Implementation Approach:** [Suggested adoption roadmap]
**Key Success Factors:** [Critical elements for successful implementation]
**Potential Challenges:** [Risks or obstacles to consider]

**Bottom Line:** [One compelling sentence on why this is a high/medium/low priority prospect]

**QUALITY STANDARDS:**
- Maintain all factual accuracy from the original
- Preserve web search citations and source links
- Add value through deeper analysis, not just rewording
- Focus on actionable insights for sales conversations
- Keep the executive tone professional and compelling`,
		rec.Name, rec.Website, visits, downloads, researchReport, scoringRubric())
}
