package category

import "strings"

const (
	handbookAttendance = "Employees are expected to be punctual and regular in attendance. Employees are expected to report to work " +
		"as scheduled, on time and prepared to start work at the beginning of their shifts and at the end of meal " +
		"periods. Late arrival, early departure or other absences from scheduled hours are disruptive and should be avoided."

	handbookCallOut = "If you will be absent from or tardy for work for any reason, you must call your supervisor as soon as possible, " +
		"but at least two hours before the beginning of your scheduled shift, and advise of the reason for your absence " +
		"or tardiness and when you expect to return to work. If you know of a required absence in advance, " +
		"you must inform your supervisor as far in advance as possible so the schedule can be adjusted.\n\n" +
		"The company reserves the right to discipline employees for unexcused absences (including late arrivals " +
		"or early departures), up to and including termination of employment, in accordance with the Progressive Discipline Policy."

	handbookCash = "You are responsible for the cash and coupons that you process during your shift. Any action contrary to the " +
		"Cash and Coupon Accountability Policy will result in disciplinary action, up to and including termination of employment, " +
		"in accordance with the Progressive Discipline Policy."

	handbookMisconduct = "**Egregious Misconduct**\n\n" +
		"Includes criminal conduct or conduct that seriously harms or immediately threatens the health and safety of other " +
		"employees or members of the public, including, without limitation:\n\n"

	handbookProfanity = "Use of profanity or abusive language toward employees, guests or other persons on company premises " +
		"or while performing company work."
)

// handbookByRule is keyed by rule name exactly as stored.
var handbookByRule = map[string]string{
	"No Call No Show":                         handbookAttendance,
	"Late by 6 or more minutes":               handbookAttendance,
	"Leaving workplace without permission":    handbookAttendance,
	"Called out with less than 2 hour notice": handbookCallOut,
	"Called out without finding coverage":     handbookCallOut,
	"Called out 4 times in one month": "The company reserves the right to discipline employees for unexcused absences " +
		"(including late arrivals or early departures), up to and including termination of employment, in accordance " +
		"with the Progressive Discipline Policy. Excessive absenteeism or tardiness.",
	"Exceeded break time by 3 or more minutes": "Employees are expected to remain at work for their entire work schedule, " +
		"except for meal periods or when required to leave on authorized company business.",
	"Staying past scheduled time (5+ minutes)": "Non-exempt employees are not permitted to work beyond their normal work " +
		"schedule without the express written approval of their Director or the Owner/Operator.",
	"Incomplete uniform": "All uniform items (including belts, outerwear, and caps) must be from the team style collection. " +
		"All garments should fit properly and be clean and in good condition.",
	"Drawer short/over $10+": handbookCash,
	"Drawer short/over $3+":  handbookCash,
	"Damaging equipment due to negligence": handbookMisconduct +
		"- Abuse, damage or deliberate destruction of company, guest, employee or vendor property.",
	"Poor work performance": handbookMisconduct +
		"- Failure to maintain satisfactory productivity and quality of work.",
	"Failure to fulfill job expectations": handbookMisconduct +
		"- Failure to maintain satisfactory productivity and quality of work.",
	"Breach of safety procedures": handbookMisconduct +
		"- Failing to properly report an injury or accident or falsely claiming injury.\n" +
		"- Violation of or disregard of the rules and regulations stated in this manual or in other company policy.",
	"Using cell phone for personal use": "Unless otherwise authorized by a director or the Owner/Operator, cell phones and " +
		"other personal electronic devices may not be visible or used while you are working. Violation of this policy may " +
		"lead to disciplinary action, up to and including termination of employment.",
	"Engaging in personal work while on the clock": handbookMisconduct +
		"- Outside employment or activities which interfere with regular working hours or productivity.",
	"Harassment, bullying, or victimization": handbookMisconduct +
		"- Making false or disparaging statements or spreading rumors.\n" +
		"- Use of profanity or abusive language toward employees, guests, or vendors.\n" +
		"- Violence or threatening behavior.\n" +
		"- Disorderly conduct on company property.",
	"Disrespectful behavior": handbookMisconduct +
		"- Making false and disparaging statements or spreading rumors.\n" +
		"- Use of profanity or abusive language.\n" +
		"- Violence or threatening behavior.",
	"Refusal to obey management instructions": handbookMisconduct +
		"- Insubordination or refusal or failure to obey instructions.",
	"Use of profanity": handbookProfanity,
	"Violent behavior": handbookMisconduct +
		"- Violence or threatening behavior.\n" +
		"- Disorderly conduct on company property, such as horseplay, threatening, insulting or fighting.",
	"Theft or fraud": handbookMisconduct +
		"- Theft, misuse or unauthorized possession or removal of company, employee, vendor or guest property.",
	"Endangering health or safety": handbookMisconduct +
		"- Disorderly conduct on company property.\n" +
		"- Working or reporting to work under the influence of alcohol or any controlled substance.\n" +
		"- Possession of dangerous weapons or firearms on company premises.",
}

// Handbook returns the handbook excerpt for a rule, or "" when none is on
// file. Lookup is exact first, then ignores case and surrounding spaces.
func Handbook(ruleName string) string {
	if text, ok := handbookByRule[ruleName]; ok {
		return text
	}
	want := strings.ToLower(strings.TrimSpace(ruleName))
	for name, text := range handbookByRule {
		if strings.ToLower(name) == want {
			return text
		}
	}
	return ""
}
