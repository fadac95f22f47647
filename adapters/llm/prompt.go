package llm

// extractionPrompt is shared by all providers so the target schema is
// described exactly once.
const extractionPrompt = `You are a resume/CV parser. Extract structured information from the provided resume text and return it as valid JSON.

Extract the following fields:
- name: Full name
- title: Job title/Role
- tagline: A brief professional tagline (generate if not present)
- email: Email address
- phone: Phone number
- location: City, State/Country
- summary: Professional summary/objective (2-3 sentences)
- skills: Array of skills with name, level (0-100 estimate), and category
- experience: Array of work experience with company, position, startDate, endDate, description, highlights
- education: Array of education with institution, degree, field, startDate, endDate, description
- certifications: Array of certifications with name, issuer, date
- social: Object with github, linkedin, twitter, website URLs (if found)

Return ONLY valid JSON, no markdown formatting or explanations.`

const userPromptPrefix = "Parse this resume:\n\n"
