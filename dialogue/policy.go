// Package dialogue decides what the assistant asks next and renders it
// through a text generator.
package dialogue

import (
	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/types"
)

type questionKey int

const (
	askEventType questionKey = iota
	askPeopleCount
	askIndoorOutdoor
	askPartyVibe
	askSpeakers
	askMicrophoneType
	askVideo
	askStart
	askEnd
	askDeliveryChoice
	askDepartment
	askAddress
	askConfirm
)

var questions = map[types.Locale]map[questionKey]string{
	types.LocaleFR: {
		askEventType:      "Quel type d'événement organisez-vous ?",
		askPeopleCount:    "Combien de personnes sont attendues ?",
		askIndoorOutdoor:  "L'événement aura-t-il lieu en intérieur ou en extérieur ?",
		askPartyVibe:      "Quelle ambiance souhaitez-vous : musique d'ambiance, discours, ou un vrai set DJ ?",
		askSpeakers:       "Combien d'intervenants auront besoin d'un micro ?",
		askMicrophoneType: "Préférez-vous des micros cravate, main ou sans fil ?",
		askVideo:          "Aurez-vous besoin d'une projection vidéo ou d'un écran ?",
		askStart:          "Quelle est la date et l'heure de début de l'événement ?",
		askEnd:            "Et à quelle date et heure se termine-t-il ?",
		askDeliveryChoice: "Souhaitez-vous la livraison ou préférez-vous venir retirer le matériel ?",
		askDepartment:     "Dans quel département se déroulera l'événement ?",
		askAddress:        "Quelle est l'adresse exacte du lieu ?",
		askConfirm:        "Parfait, laissez-moi vérifier que tout est correct.",
	},
	types.LocaleEN: {
		askEventType:      "What type of event are you planning?",
		askPeopleCount:    "How many people are you expecting?",
		askIndoorOutdoor:  "Will the event be indoor or outdoor?",
		askPartyVibe:      "What atmosphere are you after: background music, speeches, or a real DJ set?",
		askSpeakers:       "How many speakers will need a microphone?",
		askMicrophoneType: "Would you prefer lapel, handheld or wireless microphones?",
		askVideo:          "Will you need video projection or a screen?",
		askStart:          "What date and time does the event start?",
		askEnd:            "And what date and time does it end?",
		askDeliveryChoice: "Would you like delivery, or would you rather pick up the equipment?",
		askDepartment:     "Which department will the event take place in?",
		askAddress:        "What is the exact address of the venue?",
		askConfirm:        "Great, let me confirm that everything is correct.",
	},
}

func (k questionKey) topic() conversation.Topic {
	switch k {
	case askEventType:
		return conversation.TopicEventType
	case askPeopleCount:
		return conversation.TopicPeopleCount
	case askIndoorOutdoor:
		return conversation.TopicIndoorOutdoor
	case askPartyVibe, askSpeakers, askMicrophoneType, askVideo:
		return conversation.TopicVibe
	case askStart:
		return conversation.TopicStart
	case askEnd:
		return conversation.TopicEnd
	case askDeliveryChoice:
		return conversation.TopicDeliveryChoice
	case askDepartment:
		return conversation.TopicDepartment
	case askAddress:
		return conversation.TopicAddress
	default:
		return conversation.TopicConfirm
	}
}

// nextKey walks the decision list top to bottom. A step is unmet only when
// its slot is unknown and its topic was never asked.
func nextKey(st *conversation.State) questionKey {
	known := st.Known
	asked := st.AskedQuestions
	unmet := func(set bool, topic conversation.Topic) bool {
		return !set && !asked.Has(topic)
	}

	switch {
	case unmet(known.EventType != nil, conversation.TopicEventType):
		return askEventType
	case unmet(known.PeopleCount != nil, conversation.TopicPeopleCount):
		return askPeopleCount
	case unmet(known.IndoorOutdoor != nil, conversation.TopicIndoorOutdoor):
		return askIndoorOutdoor
	case unmet(known.Vibe != nil, conversation.TopicVibe):
		if st.Branch() == conversation.ConferenceBranch {
			return conferenceKey(known.ConferenceDetails)
		}
		return askPartyVibe
	case unmet(known.StartISO != nil, conversation.TopicStart):
		return askStart
	case unmet(known.EndISO != nil, conversation.TopicEnd):
		return askEnd
	}

	if !st.PackKey.Valid() && unmet(known.DeliveryChoice != nil, conversation.TopicDeliveryChoice) {
		return askDeliveryChoice
	}
	if known.DeliveryChoice != nil && *known.DeliveryChoice == types.DeliveryDelivery {
		switch {
		case unmet(known.Department != nil, conversation.TopicDepartment):
			return askDepartment
		case unmet(known.Address != nil, conversation.TopicAddress):
			return askAddress
		}
	}
	return askConfirm
}

func conferenceKey(d *types.ConferenceDetails) questionKey {
	if d == nil || d.SpeakerCount == nil {
		return askSpeakers
	}
	if d.NeedsMicrophones != nil && *d.NeedsMicrophones && d.MicrophoneType == nil {
		return askMicrophoneType
	}
	if d.NeedsVideo == nil {
		return askVideo
	}
	return askSpeakers
}

// NextQuestion returns the single question the assistant should ask now.
// It never fails; a fully resolved state yields the soft confirmation.
func NextQuestion(st *conversation.State, locale types.Locale) string {
	return questions[locale.Resolve()][nextKey(st)]
}

// NextTopic is the topic behind NextQuestion.
func NextTopic(st *conversation.State) conversation.Topic {
	return nextKey(st).topic()
}
