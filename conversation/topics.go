package conversation

import (
	"regexp"

	"github.com/tbxark/quoteagent/extract"
)

type Topic string

const (
	TopicEventType      Topic = "eventType"
	TopicPeopleCount    Topic = "peopleCount"
	TopicIndoorOutdoor  Topic = "indoorOutdoor"
	TopicVibe           Topic = "vibe"
	TopicStart          Topic = "start"
	TopicEnd            Topic = "end"
	TopicDeliveryChoice Topic = "deliveryChoice"
	TopicDepartment     Topic = "department"
	TopicAddress        Topic = "address"
	// TopicConfirm is the terminal soft confirmation; it is never tracked.
	TopicConfirm Topic = "confirm"
)

// AskedQuestions records which topics an assistant message has already
// verbalized, whether or not they were answered. Flags only ever go from
// false to true.
type AskedQuestions struct {
	EventType      bool `json:"eventType"`
	PeopleCount    bool `json:"peopleCount"`
	IndoorOutdoor  bool `json:"indoorOutdoor"`
	Vibe           bool `json:"vibe"`
	Start          bool `json:"start"`
	End            bool `json:"end"`
	DeliveryChoice bool `json:"deliveryChoice"`
	Department     bool `json:"department"`
	Address        bool `json:"address"`
}

func (a *AskedQuestions) field(topic Topic) *bool {
	switch topic {
	case TopicEventType:
		return &a.EventType
	case TopicPeopleCount:
		return &a.PeopleCount
	case TopicIndoorOutdoor:
		return &a.IndoorOutdoor
	case TopicVibe:
		return &a.Vibe
	case TopicStart:
		return &a.Start
	case TopicEnd:
		return &a.End
	case TopicDeliveryChoice:
		return &a.DeliveryChoice
	case TopicDepartment:
		return &a.Department
	case TopicAddress:
		return &a.Address
	default:
		return nil
	}
}

func (a AskedQuestions) Has(topic Topic) bool {
	if f := a.field(topic); f != nil {
		return *f
	}
	return false
}

func (a *AskedQuestions) Mark(topics ...Topic) {
	for _, topic := range topics {
		if f := a.field(topic); f != nil {
			*f = true
		}
	}
}

// VibeBranch selects the vocabulary used to recognize a vibe question.
type VibeBranch int

const (
	PartyBranch VibeBranch = iota
	ConferenceBranch
)

var (
	askedEventType     = regexp.MustCompile(`type d'evenement|quel evenement|quelle occasion|kind of event|type of event|which event|what event|what occasion`)
	askedPeopleCount   = regexp.MustCompile(`(combien|nombre) d(e |')(personnes|invites|convives|participants)|how many (people|guests|attendees|participants)|number of (people|guests|attendees)`)
	askedIndoorOutdoor = regexp.MustCompile(`(interieur|indoor|inside|dedans).{0,30}(exterieur|outdoor|outside|dehors)|(exterieur|outdoor|outside|dehors).{0,30}(interieur|indoor|inside|dedans)`)
	askedPartyVibe     = regexp.MustCompile(`\b(ambiance|atmosphere|discours|speech|speeches|dj|musique|music|danser?|dance)\b`)
	askedConfVibe      = regexp.MustCompile(`\b(intervenants?|orateurs?|speakers?|micros?|microphones?|videos?|projection|projecteur|ecrans?|screen)\b`)
	askedStartSpecific = regexp.MustCompile(`\b(debut|commence|commencer|start|starts|begin|begins)\b`)
	askedDateGeneric   = regexp.MustCompile(`\b(date|quand|when|quel jour|what day|a quelle heure|what time)\b`)
	askedEnd           = regexp.MustCompile(`\b(fin|se termine|termine|terminer|jusqu'a quand|end|ends|finish|finishes|until when)\b`)
	askedDelivery      = regexp.MustCompile(`\b(livraison|livrer|livre|retrait|retirer|delivery|deliver|pick ?up|pick-up|collect)\b`)
	askedDepartment    = regexp.MustCompile(`\b(departement|department|dept|dpt)\b`)
	askedAddress       = regexp.MustCompile(`\b(adresse|address|lieu exact|exact location)\b`)
)

// DetectAskedTopics lists the topics an assistant message verbalizes. The
// vibe vocabulary depends on branch because conference and party phrasing
// share no words.
func DetectAskedTopics(text string, branch VibeBranch) []Topic {
	normalized := extract.Normalize(text)
	var topics []Topic
	if askedEventType.MatchString(normalized) {
		topics = append(topics, TopicEventType)
	}
	if askedPeopleCount.MatchString(normalized) {
		topics = append(topics, TopicPeopleCount)
	}
	if askedIndoorOutdoor.MatchString(normalized) {
		topics = append(topics, TopicIndoorOutdoor)
	}
	vibe := askedPartyVibe
	if branch == ConferenceBranch {
		vibe = askedConfVibe
	}
	if vibe.MatchString(normalized) {
		topics = append(topics, TopicVibe)
	}
	end := askedEnd.MatchString(normalized)
	if askedStartSpecific.MatchString(normalized) || (!end && askedDateGeneric.MatchString(normalized)) {
		topics = append(topics, TopicStart)
	}
	if end {
		topics = append(topics, TopicEnd)
	}
	if askedDelivery.MatchString(normalized) {
		topics = append(topics, TopicDeliveryChoice)
	}
	if askedDepartment.MatchString(normalized) {
		topics = append(topics, TopicDepartment)
	}
	if askedAddress.MatchString(normalized) {
		topics = append(topics, TopicAddress)
	}
	return topics
}
