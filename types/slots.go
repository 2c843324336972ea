package types

type EventType string

const (
	EventWedding    EventType = "mariage"
	EventBirthday   EventType = "anniversaire"
	EventConference EventType = "conférence"
	EventSeminar    EventType = "séminaire"
	EventParty      EventType = "soirée"
)

type Setting string

const (
	SettingIndoor  Setting = "intérieur"
	SettingOutdoor Setting = "extérieur"
)

type Vibe string

const (
	VibeAmbiance     Vibe = "ambiance"
	VibeSpeeches     Vibe = "discours"
	VibeDJ           Vibe = "dj"
	VibeMixed        Vibe = "mixte"
	VibeVoice        Vibe = "voix"
	VibePresentation Vibe = "presentation"
)

type DeliveryChoice string

const (
	DeliveryPickup   DeliveryChoice = "retrait"
	DeliveryDelivery DeliveryChoice = "livraison"
)

type MicrophoneType string

const (
	MicrophoneLapel    MicrophoneType = "cravate"
	MicrophoneHandheld MicrophoneType = "main"
	MicrophoneWireless MicrophoneType = "sans-fil"
)

type ConferenceDetails struct {
	SpeakerCount     *int            `json:"speakerCount,omitempty" jsonschema:"description=Number of speakers needing sound"`
	NeedsMicrophones *bool           `json:"needsMicrophones,omitempty" jsonschema:"description=Whether speakers need microphones"`
	NeedsVideo       *bool           `json:"needsVideo,omitempty" jsonschema:"description=Whether video projection is needed"`
	MicrophoneType   *MicrophoneType `json:"microphoneType,omitempty" jsonschema:"enum=cravate,enum=main,enum=sans-fil,description=Preferred microphone type"`
}

func (d *ConferenceDetails) Empty() bool {
	return d == nil || (d.SpeakerCount == nil && d.NeedsMicrophones == nil && d.NeedsVideo == nil && d.MicrophoneType == nil)
}

// KnownContext holds every slot extracted so far. A nil field is unknown;
// once set, a field is never overwritten.
type KnownContext struct {
	EventType         *EventType         `json:"eventType,omitempty" jsonschema:"enum=mariage,enum=anniversaire,enum=conférence,enum=séminaire,enum=soirée,description=Kind of event"`
	PeopleCount       *int               `json:"peopleCount,omitempty" jsonschema:"description=Expected number of people"`
	IndoorOutdoor     *Setting           `json:"indoorOutdoor,omitempty" jsonschema:"enum=intérieur,enum=extérieur"`
	Vibe              *Vibe              `json:"vibe,omitempty" jsonschema:"description=Sound or atmosphere need"`
	ConferenceDetails *ConferenceDetails `json:"conferenceDetails,omitempty"`
	// StartISO and EndISO carry the raw date/time expression; resolving it
	// to an instant happens downstream.
	StartISO         *string         `json:"startISO,omitempty" jsonschema:"description=Unresolved start date/time expression"`
	EndISO           *string         `json:"endISO,omitempty" jsonschema:"description=Unresolved end date/time expression"`
	DeliveryChoice   *DeliveryChoice `json:"deliveryChoice,omitempty" jsonschema:"enum=retrait,enum=livraison"`
	WithInstallation *bool           `json:"withInstallation,omitempty"`
	Department       *string         `json:"department,omitempty" jsonschema:"description=French department code"`
	Address          *string         `json:"address,omitempty" jsonschema:"description=Delivery address as typed"`
}

func (k *KnownContext) Empty() bool {
	if k == nil {
		return true
	}
	return k.EventType == nil && k.PeopleCount == nil && k.IndoorOutdoor == nil &&
		k.Vibe == nil && k.ConferenceDetails.Empty() && k.StartISO == nil &&
		k.EndISO == nil && k.DeliveryChoice == nil && k.WithInstallation == nil &&
		k.Department == nil && k.Address == nil
}

// ConferenceLike reports whether the vibe questions follow the voice and
// projection branch instead of the party branch.
func ConferenceLike(event *EventType, pack PackKey) bool {
	if pack == PackConference {
		return true
	}
	if event == nil {
		return false
	}
	return *event == EventConference || *event == EventSeminar
}

func Ptr[T any](v T) *T {
	return &v
}
