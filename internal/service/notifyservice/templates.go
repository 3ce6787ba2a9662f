package notifyservice

import (
	"fmt"
	"regexp"
)

const (
	TemplateContractSubscription = "contract_subscription"
	TemplateSavingCollection     = "saving_collection"
)

var templates = map[string]map[string]string{
	"en": {
		TemplateContractSubscription: "Congratulations Mr. {customer_last_name}, you have just subscribed to savings with CID Money. The contract is: {type_of_saving}, starting {date_of_beginning}, and ending {date_of_end}, the amount is {amount}. The amount to be saved is {total_ammount_to_save_during_contract}. Thank you for your trust.",
		TemplateSavingCollection:     "Hello Mr. {customer_last_name}. Savings of {amount_collected} Collected successfully, Balance: {account_balance}. Term: {number_of_collect_remaining}. Amount at Term: {total_ammount_saved_by_end_of_contract}. Appointment: {date_of_next_collect}.",
	},
	"fr": {
		TemplateContractSubscription: "Félicitations Monsieur {customer_last_name}, vous venez de souscrire à une épargne avec CID Money. Le contrat est : {type_of_saving}, qui commence {date_of_beginning}, et qui prend fin {date_of_end}, le montant est {amount}. La somme à épargner est {total_ammount_to_save_during_contract}. Merci de votre confiance.",
		TemplateSavingCollection:     "Bonjour Monsieur {customer_last_name}. Épargne de {amount_collected} Collecté avec succès, Solde : {account_balance}. Terme : {number_of_collect_remaining}. Montant à Terme : {total_ammount_saved_by_end_of_contract}. RDV : {date_of_next_collect}.",
	},
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// FillTemplate substitutes {key} placeholders. A key missing from vars is
// rendered as [[[key ⚠️]]] so the gap is visible in the delivered text.
func FillTemplate(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := vars[key]; ok {
			return v
		}
		return "[[[" + key + " ⚠️]]]"
	})
}

// Render looks up a template by language, falling back to French.
func Render(lang, name string, vars map[string]string) (string, error) {
	set, ok := templates[lang]
	if !ok {
		set = templates["fr"]
	}
	text, ok := set[name]
	if !ok {
		return "", fmt.Errorf("unknown notification template %q", name)
	}
	return FillTemplate(text, vars), nil
}
