package notify

// templateSet holds the customer-facing wording for one locale. Adding
// a locale means adding a table entry, not a new branch.
type templateSet struct {
	waLangCode    string // WhatsApp Cloud API template language code
	subjectPrefix string
	titleFallback string
	refLabel      string
	body          string // greeting name, reference block, title, date, adults, children, total, extra info
}

const englishBody = `Hello%s,

Thank you for your request!
We have received your pre-booking for the following experience:

%s=== Experience ===
%s
Date: %s
Adults: %d
Children: %d
Estimated total: %s

=== Additional information you provided ===
%s

Please note: this is NOT the final booking confirmation yet.

Our team will now check availability and will contact you to confirm your booking
or suggest alternatives if needed.

If you notice any mistake in the information above or need to change anything,
you can contact us at:

Email: marketing@dmcmadeira.pt
WhatsApp: +351 9xx xxx xxx

Thank you,
What to Do Madeira / DMC Madeira`

const portugueseBody = `Olá%s,

Obrigado pelo seu pedido!
Recebemos a sua pré-reserva para a seguinte experiência:

%s=== Experiência ===
%s
Data: %s
Adultos: %d
Crianças: %d
Valor estimado: %s

=== Informação adicional que indicou ===
%s

Atenção: esta ainda NÃO é a confirmação final da reserva.

A nossa equipa vai agora verificar a disponibilidade e entrará em contacto
consigo para confirmar a reserva ou sugerir alternativas, se necessário.

Se detetar algum erro na informação acima ou precisar de alterar algo,
pode contactar-nos através de:

Email: marketing@dmcmadeira.pt
WhatsApp: +351 9xx xxx xxx

Obrigado,
What to Do Madeira / DMC Madeira`

var localeTemplates = map[string]templateSet{
	"en": {
		waLangCode:    "en_US",
		subjectPrefix: "Pre-booking received",
		titleFallback: "your experience",
		refLabel:      "Booking reference",
		body:          englishBody,
	},
	"pt": {
		waLangCode:    "pt_PT",
		subjectPrefix: "Pré-reserva recebida",
		titleFallback: "a sua experiência",
		refLabel:      "Referência de reserva",
		body:          portugueseBody,
	},
}

// lookupTemplates resolves a normalized locale code, defaulting to
// English for anything it does not know.
func lookupTemplates(lang string) templateSet {
	if t, ok := localeTemplates[lang]; ok {
		return t
	}
	return localeTemplates["en"]
}
