package sejm

import "sejmdata-backend/services/declarations"

// MP is a normalized member-of-parliament record, immutable once
// built and re-derived on every cache miss.
type MP struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FirstLastName  string `json:"firstLastName"`
	Club           string `json:"club"`
	DistrictNum    int    `json:"districtNum"`
	DistrictName   string `json:"districtName"`
	Voivodeship    string `json:"voivodeship,omitempty"`
	NumberOfVotes  int    `json:"numberOfVotes"`
	Email          string `json:"email,omitempty"`
	Active         bool   `json:"active"`
	BirthDate      string `json:"birthDate,omitempty"`
	BirthLocation  string `json:"birthLocation,omitempty"`
	Profession     string `json:"profession,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
	InactiveCause  string `json:"inactiveCause,omitempty"`
}

// VotingStats aggregates per-session voting counters.
type VotingStats struct {
	TotalVotings int `json:"totalVotings"`
	Voted        int `json:"voted"`
	Missed       int `json:"missed"`
	PresencePct  int `json:"presencePct"`
}

type Attachment struct {
	URL          string `json:"URL"`
	Name         string `json:"name"`
	LastModified string `json:"lastModified,omitempty"`
}

type RecipientDetail struct {
	Name              string `json:"name"`
	Sent              string `json:"sent"`
	AnswerDelayedDays int    `json:"answerDelayedDays"`
}

type InterpellationReply struct {
	Key            string       `json:"key,omitempty"`
	From           string       `json:"from"`
	ReceiptDate    string       `json:"receiptDate"`
	LastModified   string       `json:"lastModified"`
	OnlyAttachment bool         `json:"onlyAttachment"`
	Prolongation   bool         `json:"prolongation"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

type Interpellation struct {
	Num               int                   `json:"num"`
	Title             string                `json:"title"`
	From              []string              `json:"from"`
	To                []string              `json:"to"`
	SentDate          string                `json:"sentDate"`
	ReceiptDate       string                `json:"receiptDate"`
	LastModified      string                `json:"lastModified"`
	AnswerDelayedDays int                   `json:"answerDelayedDays"`
	RecipientDetails  []RecipientDetail     `json:"recipientDetails,omitempty"`
	Replies           []InterpellationReply `json:"replies,omitempty"`
}

// Answered reports whether the interpellation received at least one
// substantive reply. A reply that only prolongs the answering
// deadline does not count.
func (i Interpellation) Answered() bool {
	for _, reply := range i.Replies {
		if !reply.Prolongation {
			return true
		}
	}
	return false
}

type WrittenQuestionReply struct {
	Key          string       `json:"key,omitempty"`
	From         string       `json:"from"`
	SentDate     string       `json:"sentDate"`
	LastModified string       `json:"lastModified"`
	Prolongation bool         `json:"prolongation"`
	Attachments  []Attachment `json:"attachments,omitempty"`
}

type WrittenQuestion struct {
	Num          int                    `json:"num"`
	Title        string                 `json:"title"`
	From         string                 `json:"from"`
	To           string                 `json:"to"`
	SentDate     string                 `json:"sentDate"`
	LastModified string                 `json:"lastModified"`
	Replies      []WrittenQuestionReply `json:"replies,omitempty"`
}

// Answered follows the same rule as Interpellation.Answered.
func (q WrittenQuestion) Answered() bool {
	for _, reply := range q.Replies {
		if !reply.Prolongation {
			return true
		}
	}
	return false
}

// MPProfile is the composite record for one MP: either fully
// assembled or not returned at all. Optional sub-fetches degrade to
// zero counts and a nil declaration instead of failing the profile.
type MPProfile struct {
	MP
	Age                  int                       `json:"age,omitempty"`
	Stats                VotingStats               `json:"stats"`
	InterpellationsCount int                       `json:"interpellationsCount"`
	QuestionsCount       int                       `json:"questionsCount"`
	PresencePct          int                       `json:"presencePct"`
	FinancialDeclaration *declarations.Declaration `json:"financialDeclaration"`
}
