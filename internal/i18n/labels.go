package i18n

// Label keys used by the presentation layer. Kept as constants so the
// presenter and the renderer tests reference the same spellings.
const (
	KeySheetChecklist    = "sheet.checklist"
	KeySheetSummary      = "sheet.summary"
	KeySheetInstructions = "sheet.instructions"

	KeyValueYes = "value.yes"
	KeyValueNo  = "value.no"

	KeySummaryTitle        = "summary.title"
	KeySummaryTarget       = "summary.target"
	KeySummaryDealType     = "summary.transaction"
	KeySummarySector       = "summary.sector"
	KeySummaryJurisdiction = "summary.jurisdiction"
	KeySummaryDate         = "summary.date_generated"
	KeySummaryTotalDocs    = "summary.total_docs"
	KeySummaryByCategory   = "summary.by_category"
	KeySummaryByPriority   = "summary.by_priority"
	KeySummaryCategory     = "summary.category"
	KeySummaryPriority     = "summary.priority"
	KeySummaryCount        = "summary.count"

	KeyInstructionsTitle   = "instructions.title"
	KeyHowToUse            = "instructions.how_to_use"
	KeyStatusDefinitions   = "instructions.status_definitions"
	KeyStatusHeader        = "instructions.status_header"
	KeyDefinitionHeader    = "instructions.definition_header"
	KeyTimelineTitle       = "timeline.title"
	KeyTimelinePhaseHeader = "timeline.phase_header"
	KeyTimelineActivities  = "timeline.activities_header"
	KeyContactsTitle       = "contacts.title"
)

// HeaderKeys returns the checklist column header keys in column order.
func HeaderKeys() []string {
	return []string{
		"header.category",
		"header.document_name",
		"header.required",
		"header.priority",
		"header.received_date",
		"header.status",
		"header.responsible",
		"header.comments",
	}
}

// HowToUseKeys returns the how-to-use instruction item keys in display order.
func HowToUseKeys() []string {
	return []string{
		"instructions.how_to_use.1",
		"instructions.how_to_use.2",
		"instructions.how_to_use.3",
		"instructions.how_to_use.4",
		"instructions.how_to_use.5",
		"instructions.how_to_use.6",
	}
}

// TimelineKeys returns (phase, activities) key pairs in display order.
func TimelineKeys() [][2]string {
	return [][2]string{
		{"timeline.1.phase", "timeline.1.activities"},
		{"timeline.2.phase", "timeline.2.activities"},
		{"timeline.3.phase", "timeline.3.activities"},
		{"timeline.4.phase", "timeline.4.activities"},
		{"timeline.5.phase", "timeline.5.activities"},
		{"timeline.6.phase", "timeline.6.activities"},
	}
}

// ContactHeaderKeys returns the advisor contact table header keys in order.
func ContactHeaderKeys() []string {
	return []string{
		"contacts.role",
		"contacts.firm",
		"contacts.person",
		"contacts.email",
		"contacts.phone",
	}
}

// ContactRoleKeys returns the advisor role keys in display order.
func ContactRoleKeys() []string {
	return []string{
		"contacts.role.legal",
		"contacts.role.financial",
		"contacts.role.tax",
		"contacts.role.environmental",
		"contacts.role.insurance",
		"contacts.role.it_cyber",
	}
}

var labelTexts = map[string]text{
	KeySheetChecklist:    {"Checklist", "Checklist"},
	KeySheetSummary:      {"Summary", "Resumo"},
	KeySheetInstructions: {"Instructions", "Instruções"},

	"header.category":      {"Category", "Categoria"},
	"header.document_name": {"Document Name", "Nome do Documento"},
	"header.required":      {"Required", "Obrigatório"},
	"header.priority":      {"Priority", "Prioridade"},
	"header.received_date": {"Received Date", "Data de Receção"},
	"header.status":        {"Status", "Estado"},
	"header.responsible":   {"Responsible", "Responsável"},
	"header.comments":      {"Comments", "Comentários"},

	"status.pending":  {"Pending", "Pendente"},
	"status.received": {"Received", "Recebido"},
	"status.reviewed": {"Reviewed", "Revisto"},
	"status.missing":  {"Missing", "Em falta"},

	"status_def.pending":  {"Document has been requested but not yet received.", "Documento solicitado mas ainda não recebido."},
	"status_def.received": {"Document received but not yet reviewed by the DD team.", "Documento recebido mas ainda não revisto pela equipa de DD."},
	"status_def.reviewed": {"Document reviewed; no further action needed.", "Documento revisto; sem ações adicionais necessárias."},
	"status_def.missing":  {"Document unavailable or target unable to provide.", "Documento indisponível ou o target não consegue fornecer."},

	KeyValueYes: {"Yes", "Sim"},
	KeyValueNo:  {"No", "Não"},

	KeySummaryTitle:        {"Due Diligence — Summary", "Due Diligence — Resumo"},
	KeySummaryTarget:       {"Target Company", "Empresa-alvo"},
	KeySummaryDealType:     {"Transaction Type", "Tipo de Transação"},
	KeySummarySector:       {"Sector", "Setor"},
	KeySummaryJurisdiction: {"Jurisdiction", "Jurisdição"},
	KeySummaryDate:         {"Date Generated", "Data de Geração"},
	KeySummaryTotalDocs:    {"Total Documents", "Total de Documentos"},
	KeySummaryByCategory:   {"Documents by Category", "Documentos por Categoria"},
	KeySummaryByPriority:   {"Documents by Priority", "Documentos por Prioridade"},
	KeySummaryCategory:     {"Category", "Categoria"},
	KeySummaryPriority:     {"Priority", "Prioridade"},
	KeySummaryCount:        {"Count", "Contagem"},

	KeyInstructionsTitle: {"Instructions", "Instruções"},
	KeyHowToUse:          {"How to Use This Checklist", "Como Usar Esta Checklist"},

	"instructions.how_to_use.1": {"1. Review all documents listed in the Checklist tab.", "1. Reveja todos os documentos listados no separador Checklist."},
	"instructions.how_to_use.2": {"2. For each document, update the Status column as you progress.", "2. Para cada documento, atualize a coluna Estado à medida que avança."},
	"instructions.how_to_use.3": {"3. Record the Received Date when the document is obtained.", "3. Registe a Data de Receção quando o documento for obtido."},
	"instructions.how_to_use.4": {"4. Assign a Responsible person for follow-up on each item.", "4. Atribua um Responsável pelo acompanhamento de cada item."},
	"instructions.how_to_use.5": {"5. Use the Comments column for any observations, issues or follow-ups.", "5. Use a coluna Comentários para observações, questões ou seguimentos."},
	"instructions.how_to_use.6": {"6. Use the filters to focus on specific categories, priorities or statuses.", "6. Utilize os filtros para focar em categorias, prioridades ou estados específicos."},

	KeyStatusDefinitions: {"Status Definitions", "Definições de Estado"},
	KeyStatusHeader:      {"Status", "Estado"},
	KeyDefinitionHeader:  {"Definition", "Definição"},

	KeyTimelineTitle:       {"Indicative DD Timeline", "Timeline Indicativo de DD"},
	KeyTimelinePhaseHeader: {"Phase", "Fase"},
	KeyTimelineActivities:  {"Activities", "Atividades"},

	"timeline.1.phase":      {"Week 1-2", "Semana 1-2"},
	"timeline.1.activities": {"Send initial document request list to target / advisors.", "Enviar lista inicial de pedidos de documentos ao target / assessores."},
	"timeline.2.phase":      {"Week 2-4", "Semana 2-4"},
	"timeline.2.activities": {"Receive and catalogue documents in virtual data room.", "Receção e catalogação de documentos no data room virtual."},
	"timeline.3.phase":      {"Week 3-6", "Semana 3-6"},
	"timeline.3.activities": {"Detailed review by legal, financial and tax workstreams.", "Revisão detalhada pelas workstreams legal, financeira e fiscal."},
	"timeline.4.phase":      {"Week 5-7", "Semana 5-7"},
	"timeline.4.activities": {"Follow-up requests and Q&A with management.", "Pedidos de follow-up e Q&A com a gestão."},
	"timeline.5.phase":      {"Week 7-8", "Semana 7-8"},
	"timeline.5.activities": {"Draft DD reports and identify key findings / red flags.", "Elaboração de relatórios de DD e identificação de red flags."},
	"timeline.6.phase":      {"Week 8-10", "Semana 8-10"},
	"timeline.6.activities": {"Final DD reports issued; feed into SPA negotiation.", "Relatórios finais de DD; alimentar negociação do SPA."},

	KeyContactsTitle: {"Advisor Contacts", "Contactos dos Assessores"},

	"contacts.role":   {"Role", "Função"},
	"contacts.firm":   {"Firm", "Firma"},
	"contacts.person": {"Contact Person", "Pessoa de Contacto"},
	"contacts.email":  {"Email", "Email"},
	"contacts.phone":  {"Phone", "Telefone"},

	"contacts.role.legal":         {"Legal Advisor", "Assessor Jurídico"},
	"contacts.role.financial":     {"Financial Advisor", "Assessor Financeiro"},
	"contacts.role.tax":           {"Tax Advisor", "Assessor Fiscal"},
	"contacts.role.environmental": {"Environmental Advisor", "Assessor Ambiental"},
	"contacts.role.insurance":     {"Insurance Advisor", "Assessor de Seguros"},
	"contacts.role.it_cyber":      {"IT / Cyber Advisor", "Assessor TI / Cyber"},

	"deal_type.share_deal": {"Share Deal", "Share Deal"},
	"deal_type.asset_deal": {"Asset Deal", "Asset Deal"},
	"deal_type.merger":     {"Merger", "Fusão"},

	"sector.healthcare":         {"Healthcare", "Saúde"},
	"sector.technology":         {"Technology", "Tecnologia"},
	"sector.industrial":         {"Industrial", "Industrial"},
	"sector.real_estate":        {"Real Estate", "Imobiliário"},
	"sector.financial_services": {"Financial Services", "Serviços Financeiros"},
	"sector.retail":             {"Retail", "Retalho"},

	"jurisdiction.portugal":      {"Portugal", "Portugal"},
	"jurisdiction.spain":         {"Spain", "Espanha"},
	"jurisdiction.international": {"International", "Internacional"},
}
