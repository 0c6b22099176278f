package wizard

// Step indices. The order is fixed: each step owns a disjoint slice of the
// draft and the contact step is always last.
const (
	StepHousing   = 0
	StepSurface   = 1
	StepInventory = 2
	StepAddresses = 3
	StepSchedule  = 4
	StepServices  = 5
	StepContact   = 6

	StepCount = 7

	// Closed is the step index while no step is displayed.
	Closed = -1
)

// Step describes one page of the quote wizard.
type Step struct {
	Title       string
	Description string
}

var steps = [StepCount]Step{
	{Title: "Type de Logement", Description: "Sélectionnez le type de votre logement actuel"},
	{Title: "Surface & Pièces", Description: "Précisez la taille de votre logement"},
	{Title: "Inventaire Objets", Description: "Listez vos meubles et objets à transporter"},
	{Title: "Adresses & Accessibilité", Description: "Adresses et facilité d'accès pour le camion"},
	{Title: "Date & Créneaux", Description: "Choisissez votre date de déménagement préférée"},
	{Title: "Services Additionnels", Description: "Sélectionnez les services supplémentaires souhaités"},
	{Title: "Informations Contact", Description: "Vos coordonnées pour l'établissement du devis"},
}

// Steps returns the ordered step definitions.
func Steps() []Step {
	out := make([]Step, StepCount)
	copy(out, steps[:])
	return out
}
