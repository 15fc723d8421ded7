package i18n

// documentTexts carries the EN/PT name for every document key defined by the
// rule base. The rule-base tests assert both languages exist for every key.
var documentTexts = map[string]text{
	// Core: Legal
	"doc.articles_of_association":      {"Articles of Association / By-laws", "Estatutos / Pacto Social"},
	"doc.certificate_of_incorporation": {"Certificate of Incorporation", "Certidão Permanente"},
	"doc.board_minutes":                {"Board minutes (last 3 years)", "Atas de assembleia (últimos 3 anos)"},
	"doc.powers_of_attorney":           {"Powers of Attorney in force", "Procurações em vigor"},
	"doc.pending_litigation":           {"Pending / threatened litigation", "Litígios pendentes / ameaçados"},
	"doc.regulatory_licences":          {"Regulatory licences & permits", "Licenças e alvarás regulatórios"},

	// Core: Financial
	"doc.audited_financials":         {"Audited Financial Statements (3 years)", "Demonstrações Financeiras auditadas (3 anos)"},
	"doc.management_accounts":        {"Management accounts (YTD)", "Balancetes de gestão (YTD)"},
	"doc.budget_forecasts":           {"Budget / Forecasts", "Orçamento / Projeções"},
	"doc.debt_schedule":              {"Debt schedule & loan agreements", "Mapa de dívida e contratos de empréstimo"},
	"doc.bank_statements":            {"Bank statements (12 months)", "Extratos bancários (12 meses)"},
	"doc.receivables_payables_aging": {"Accounts receivable & payable aging", "Aging de contas a receber e a pagar"},

	// Core: Tax
	"doc.corporate_tax_returns": {"Corporate tax returns (3 years)", "Declarações IRC (3 anos)"},
	"doc.vat_returns":           {"VAT returns (3 years)", "Declarações IVA (3 anos)"},
	"doc.tax_assessments":       {"Tax assessments / disputes", "Avaliações / litígios fiscais"},
	"doc.transfer_pricing":      {"Transfer pricing documentation", "Documentação de preços de transferência"},

	// Core: HR
	"doc.employee_list":            {"Employee list with terms", "Lista de colaboradores com condições"},
	"doc.employment_contracts_key": {"Employment contracts (key personnel)", "Contratos de trabalho (pessoal-chave)"},
	"doc.collective_bargaining":    {"Collective bargaining agreements", "Convenções coletivas de trabalho"},
	"doc.pension_benefit_plans":    {"Pension / benefit plans", "Planos de pensões / benefícios"},
	"doc.org_chart":                {"Organizational chart", "Organograma"},

	// Core: Commercial
	"doc.top_customer_contracts": {"Top 10 customer contracts", "Contratos dos 10 maiores clientes"},
	"doc.top_supplier_contracts": {"Top 10 supplier contracts", "Contratos dos 10 maiores fornecedores"},
	"doc.material_contracts":     {"Material contracts summary", "Resumo de contratos materiais"},

	// Core: Compliance
	"doc.gdpr_policies":      {"Data protection / GDPR policies", "Políticas de proteção de dados / RGPD"},
	"doc.aml_policies":       {"Anti-money laundering policies", "Políticas de prevenção de branqueamento"},
	"doc.insurance_policies": {"Insurance policies schedule", "Mapa de apólices de seguro"},
	"doc.insurance_claims":   {"Insurance claims history", "Histórico de sinistros"},

	// Sector: Healthcare
	"doc.healthcare_operating_licences": {"Medical / healthcare operating licences", "Licenças de atividade médica / saúde"},
	"doc.patient_data_compliance":       {"Patient data compliance (GDPR health data)", "Conformidade dados de pacientes (RGPD dados de saúde)"},
	"doc.equipment_certifications":      {"Equipment certifications & calibration logs", "Certificações de equipamentos e registos de calibração"},
	"doc.clinical_trial_authorizations": {"Clinical trial authorizations", "Autorizações de ensaios clínicos"},
	"doc.pharmacy_licences":             {"Pharmacy / drug distribution licences", "Licenças de farmácia / distribuição de medicamentos"},
	"doc.medical_staff_credentials":     {"Medical staff credentials & licences", "Credenciais e cédulas profissionais do pessoal médico"},
	"doc.health_safety_inspections":     {"Health & safety inspection reports", "Relatórios de inspeção de saúde e segurança"},
	"doc.nhs_agreements":                {"Agreements with national health service", "Acordos com o Serviço Nacional de Saúde"},

	// Sector: Technology
	"doc.ip_portfolio":               {"IP portfolio (patents, trademarks, domains)", "Portfólio de PI (patentes, marcas, domínios)"},
	"doc.software_licences_inbound":  {"Software licence agreements (inbound)", "Contratos de licença de software (inbound)"},
	"doc.software_licences_outbound": {"Software licence agreements (outbound / SaaS)", "Contratos de licença de software (outbound / SaaS)"},
	"doc.source_code_escrow":         {"Source code escrow agreements", "Contratos de escrow de código-fonte"},
	"doc.open_source_audit":          {"Open source software audit", "Auditoria de software open source"},
	"doc.saas_metrics":               {"SaaS / subscription metrics (ARR, churn, LTV)", "Métricas SaaS / subscrição (ARR, churn, LTV)"},
	"doc.it_security_audit":          {"IT infrastructure & security audit", "Auditoria de infraestrutura TI e segurança"},
	"doc.data_breach_history":        {"Data breach history & incident response plan", "Histórico de violações de dados e plano de resposta"},
	"doc.tech_talent_retention":      {"Key developer / tech talent retention plans", "Planos de retenção de talento tecnológico-chave"},
	"doc.customer_sla_contracts":     {"Customer contracts with SLA details", "Contratos de clientes com detalhe de SLA"},

	// Sector: Industrial
	"doc.environmental_permits":        {"Environmental permits & impact assessments", "Licenças ambientais e avaliações de impacto"},
	"doc.health_safety_certifications": {"Health & Safety certifications (ISO 45001)", "Certificações de Saúde e Segurança (ISO 45001)"},
	"doc.equipment_maintenance_logs":   {"Equipment maintenance logs", "Registos de manutenção de equipamentos"},
	"doc.production_capacity":          {"Production capacity reports", "Relatórios de capacidade produtiva"},
	"doc.environmental_remediation":    {"Environmental remediation obligations", "Obrigações de remediação ambiental"},
	"doc.supply_chain_contracts":       {"Supply chain / logistics contracts", "Contratos de cadeia de abastecimento / logística"},
	"doc.quality_certifications":       {"Quality management certifications (ISO 9001)", "Certificações de gestão de qualidade (ISO 9001)"},
	"doc.fixed_asset_register":         {"Fixed asset register with valuations", "Registo de ativos fixos com avaliações"},

	// Sector: Real Estate
	"doc.property_title_deeds":           {"Property title deeds / Certidões prediais", "Escrituras de propriedade / Certidões prediais"},
	"doc.land_registry_certificates":     {"Land registry certificates", "Certidões do registo predial"},
	"doc.lease_agreements":               {"Lease agreements (tenant schedule)", "Contratos de arrendamento (mapa de inquilinos)"},
	"doc.building_permits":               {"Building permits & occupancy licences", "Licenças de construção e utilização"},
	"doc.property_valuations":            {"Independent property valuations", "Avaliações independentes de imóveis"},
	"doc.environmental_site_assessments": {"Environmental site assessments", "Avaliações ambientais dos imóveis"},
	"doc.property_management_contracts":  {"Property management contracts", "Contratos de gestão de propriedades"},
	"doc.rental_income_schedule":         {"Rental income schedule & vacancy rates", "Mapa de rendas e taxas de desocupação"},
	"doc.easements_encumbrances":         {"Easements, encumbrances & restrictions", "Servidões, ónus e restrições"},

	// Sector: Financial Services
	"doc.financial_regulatory_licences": {"Regulatory licences (Central Bank / CMVM / ASF)", "Licenças regulatórias (Banco de Portugal / CMVM / ASF)"},
	"doc.capital_adequacy_reports":      {"Capital adequacy / solvency reports", "Relatórios de adequação de capital / solvência"},
	"doc.aml_kyc_policies":              {"AML / KYC policies & procedures", "Políticas e procedimentos AML / KYC"},
	"doc.regulatory_inspection_reports": {"Regulatory inspection reports", "Relatórios de inspeções regulatórias"},
	"doc.loan_portfolio_analysis":       {"Loan / credit portfolio analysis", "Análise da carteira de crédito"},
	"doc.provision_schedules":           {"Provision / impairment schedules", "Mapas de provisões / imparidades"},
	"doc.compliance_officer_reports":    {"Compliance officer reports (2 years)", "Relatórios do compliance officer (2 anos)"},
	"doc.it_cybersecurity_audit":        {"IT systems & cybersecurity audit", "Auditoria de sistemas TI e cibersegurança"},
	"doc.client_complaints_register":    {"Client complaints register", "Registo de reclamações de clientes"},

	// Sector: Retail
	"doc.franchise_agreements": {"Franchise / distribution agreements", "Contratos de franquia / distribuição"},
	"doc.ecommerce_metrics":    {"E-commerce platform details & metrics", "Detalhes e métricas da plataforma e-commerce"},
	"doc.store_leases":         {"Store lease agreements", "Contratos de arrendamento de lojas"},
	"doc.brand_registrations":  {"Brand / trademark registrations", "Registos de marca"},
	"doc.inventory_reports":    {"Inventory management reports", "Relatórios de gestão de inventário"},
	"doc.loyalty_programme":    {"Loyalty programme details", "Detalhes do programa de fidelização"},
	"doc.consumer_protection":  {"Consumer protection compliance", "Conformidade com proteção do consumidor"},
	"doc.store_profitability":  {"Store network profitability analysis", "Análise de rentabilidade da rede de lojas"},

	// Deal type: Asset Deal
	"doc.asset_list":                   {"Detailed asset list with descriptions", "Lista detalhada de ativos com descrições"},
	"doc.asset_transfer_agreements":    {"Asset transfer agreements (drafts)", "Contratos de transferência de ativos (minutas)"},
	"doc.third_party_consents":         {"Third-party consents for asset transfer", "Consentimentos de terceiros para transferência de ativos"},
	"doc.asset_transfer_tax_analysis":  {"Tax implications analysis of asset transfer", "Análise de implicações fiscais da transferência de ativos"},
	"doc.asset_valuations":             {"Asset valuations / appraisals", "Avaliações de ativos"},
	"doc.assumed_liabilities_schedule": {"Assumed vs excluded liabilities schedule", "Mapa de passivos assumidos vs excluídos"},

	// Deal type: Share Deal
	"doc.shareholder_agreements":      {"Shareholder agreements", "Acordos parassociais"},
	"doc.share_certificates":          {"Share certificates", "Títulos de participação / certificados de ações"},
	"doc.cap_table":                   {"Capitalisation table (Cap table)", "Tabela de capitalização (Cap table)"},
	"doc.share_transfer_restrictions": {"Share transfer restrictions / pre-emption rights", "Restrições de transmissão de ações / direitos de preferência"},
	"doc.drag_tag_provisions":         {"Drag-along / tag-along provisions", "Cláusulas de drag-along / tag-along"},
	"doc.minority_rights":             {"Minority shareholder rights", "Direitos de acionistas minoritários"},
	"doc.dividend_history":            {"Dividend history & policy", "Histórico e política de dividendos"},
	"doc.stock_option_agreements":     {"Stock option / warrant agreements", "Contratos de stock options / warrants"},

	// Deal type: Merger
	"doc.merger_plan":            {"Merger plan", "Projeto de fusão"},
	"doc.fairness_opinion":       {"Fairness opinion", "Fairness opinion"},
	"doc.exchange_ratio":         {"Exchange ratio justification", "Fundamentação da relação de troca"},
	"doc.merger_filings":         {"Merger filing / regulatory notifications", "Notificações regulatórias da fusão"},
	"doc.antitrust_analysis":     {"Competition / antitrust analysis", "Análise concorrencial / antitrust"},
	"doc.creditor_notifications": {"Creditor notification process documentation", "Documentação do processo de notificação de credores"},
	"doc.integration_plan":       {"Integration plan (key personnel)", "Plano de integração (pessoal-chave)"},
	"doc.synergies_analysis":     {"Synergies analysis", "Análise de sinergias"},

	// Jurisdiction: Portugal
	"doc.commercial_registry_extracts": {"Commercial registry extracts (Conservatória)", "Certidões da Conservatória do Registo Comercial"},
	"doc.tax_clearance_certificates":   {"Tax clearance certificates (AT / Social Security)", "Certidões de não dívida (AT / Segurança Social)"},
	"doc.rcbe_filing":                  {"Beneficial ownership register filing (RCBE)", "Registo Central do Beneficiário Efetivo (RCBE)"},

	// Jurisdiction: Spain
	"doc.mercantile_registry_extracts": {"Mercantile registry extracts (Registro Mercantil)", "Certidões do Registro Mercantil"},
	"doc.aeat_clearance_certificates":  {"Tax residency & clearance certificates (AEAT)", "Certificados de residência e não dívida fiscal (AEAT)"},
	"doc.sepblac_filings":              {"SEPBLAC anti-money laundering filings", "Comunicações SEPBLAC de prevenção de branqueamento"},

	// Jurisdiction: International
	"doc.fdi_approvals":            {"Foreign investment / FDI screening approvals", "Aprovações de controlo de investimento estrangeiro (FDI)"},
	"doc.sanctions_screening":      {"Sanctions & export control screening", "Verificação de sanções e controlos de exportação"},
	"doc.group_structure_chart":    {"Group structure chart (all jurisdictions)", "Organograma do grupo (todas as jurisdições)"},
	"doc.withholding_tax_analysis": {"Withholding tax & treaty relief analysis", "Análise de retenção na fonte e convenções fiscais"},
}
