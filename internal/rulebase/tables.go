package rulebase

import "github.com/sells-group/dd-checklist/internal/model"

// coreTemplates are requested on every deal. Insertion order within each
// category is the order documents appear on the generated checklist.
var coreTemplates = []Template{
	{model.CategoryLegal, "doc.articles_of_association", true, model.PriorityHigh},
	{model.CategoryLegal, "doc.certificate_of_incorporation", true, model.PriorityHigh},
	{model.CategoryLegal, "doc.board_minutes", true, model.PriorityHigh},
	{model.CategoryLegal, "doc.powers_of_attorney", true, model.PriorityMedium},
	{model.CategoryLegal, "doc.pending_litigation", true, model.PriorityHigh},
	{model.CategoryLegal, "doc.regulatory_licences", true, model.PriorityHigh},
	{model.CategoryFinancial, "doc.audited_financials", true, model.PriorityHigh},
	{model.CategoryFinancial, "doc.management_accounts", true, model.PriorityHigh},
	{model.CategoryFinancial, "doc.budget_forecasts", true, model.PriorityMedium},
	{model.CategoryFinancial, "doc.debt_schedule", true, model.PriorityHigh},
	{model.CategoryFinancial, "doc.bank_statements", true, model.PriorityMedium},
	{model.CategoryFinancial, "doc.receivables_payables_aging", true, model.PriorityMedium},
	{model.CategoryTax, "doc.corporate_tax_returns", true, model.PriorityHigh},
	{model.CategoryTax, "doc.vat_returns", true, model.PriorityHigh},
	{model.CategoryTax, "doc.tax_assessments", true, model.PriorityHigh},
	{model.CategoryTax, "doc.transfer_pricing", false, model.PriorityMedium},
	{model.CategoryHR, "doc.employee_list", true, model.PriorityHigh},
	{model.CategoryHR, "doc.employment_contracts_key", true, model.PriorityHigh},
	{model.CategoryHR, "doc.collective_bargaining", true, model.PriorityMedium},
	{model.CategoryHR, "doc.pension_benefit_plans", true, model.PriorityMedium},
	{model.CategoryHR, "doc.org_chart", true, model.PriorityLow},
	{model.CategoryCommercial, "doc.top_customer_contracts", true, model.PriorityHigh},
	{model.CategoryCommercial, "doc.top_supplier_contracts", true, model.PriorityHigh},
	{model.CategoryCommercial, "doc.material_contracts", true, model.PriorityHigh},
	{model.CategoryCompliance, "doc.gdpr_policies", true, model.PriorityHigh},
	{model.CategoryCompliance, "doc.aml_policies", false, model.PriorityMedium},
	{model.CategoryCompliance, "doc.insurance_policies", true, model.PriorityHigh},
	{model.CategoryCompliance, "doc.insurance_claims", false, model.PriorityMedium},
}

var dealTypeTemplates = map[model.DealType][]Template{
	model.DealTypeAssetDeal: {
		{model.CategoryLegal, "doc.asset_list", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.asset_transfer_agreements", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.third_party_consents", true, model.PriorityHigh},
		{model.CategoryTax, "doc.asset_transfer_tax_analysis", true, model.PriorityHigh},
		{model.CategoryFinancial, "doc.asset_valuations", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.assumed_liabilities_schedule", true, model.PriorityHigh},
	},
	model.DealTypeShareDeal: {
		{model.CategoryLegal, "doc.shareholder_agreements", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.share_certificates", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.cap_table", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.share_transfer_restrictions", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.drag_tag_provisions", true, model.PriorityMedium},
		{model.CategoryLegal, "doc.minority_rights", true, model.PriorityMedium},
		{model.CategoryFinancial, "doc.dividend_history", true, model.PriorityMedium},
		{model.CategoryLegal, "doc.stock_option_agreements", false, model.PriorityMedium},
	},
	model.DealTypeMerger: {
		{model.CategoryLegal, "doc.merger_plan", true, model.PriorityHigh},
		{model.CategoryFinancial, "doc.fairness_opinion", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.exchange_ratio", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.merger_filings", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.antitrust_analysis", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.creditor_notifications", true, model.PriorityHigh},
		{model.CategoryHR, "doc.integration_plan", true, model.PriorityMedium},
		{model.CategoryFinancial, "doc.synergies_analysis", true, model.PriorityMedium},
	},
}

var sectorTemplates = map[model.Sector][]Template{
	model.SectorHealthcare: {
		{model.CategoryCompliance, "doc.healthcare_operating_licences", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.patient_data_compliance", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.equipment_certifications", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.clinical_trial_authorizations", false, model.PriorityMedium},
		{model.CategoryCompliance, "doc.pharmacy_licences", false, model.PriorityHigh},
		{model.CategoryHR, "doc.medical_staff_credentials", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.health_safety_inspections", true, model.PriorityMedium},
		{model.CategoryCompliance, "doc.nhs_agreements", false, model.PriorityMedium},
	},
	model.SectorTechnology: {
		{model.CategoryIP, "doc.ip_portfolio", true, model.PriorityHigh},
		{model.CategoryIP, "doc.software_licences_inbound", true, model.PriorityHigh},
		{model.CategoryIP, "doc.software_licences_outbound", true, model.PriorityHigh},
		{model.CategoryIP, "doc.source_code_escrow", false, model.PriorityMedium},
		{model.CategoryIP, "doc.open_source_audit", true, model.PriorityHigh},
		{model.CategoryCommercial, "doc.saas_metrics", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.it_security_audit", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.data_breach_history", true, model.PriorityMedium},
		{model.CategoryHR, "doc.tech_talent_retention", false, model.PriorityMedium},
		{model.CategoryCommercial, "doc.customer_sla_contracts", true, model.PriorityMedium},
	},
	model.SectorIndustrial: {
		{model.CategoryCompliance, "doc.environmental_permits", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.health_safety_certifications", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.equipment_maintenance_logs", true, model.PriorityMedium},
		{model.CategoryOperational, "doc.production_capacity", true, model.PriorityMedium},
		{model.CategoryCompliance, "doc.environmental_remediation", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.supply_chain_contracts", true, model.PriorityMedium},
		{model.CategoryCompliance, "doc.quality_certifications", true, model.PriorityMedium},
		{model.CategoryOperational, "doc.fixed_asset_register", true, model.PriorityHigh},
	},
	model.SectorRealEstate: {
		{model.CategoryLegal, "doc.property_title_deeds", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.land_registry_certificates", true, model.PriorityHigh},
		{model.CategoryCommercial, "doc.lease_agreements", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.building_permits", true, model.PriorityHigh},
		{model.CategoryFinancial, "doc.property_valuations", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.environmental_site_assessments", true, model.PriorityMedium},
		{model.CategoryOperational, "doc.property_management_contracts", true, model.PriorityMedium},
		{model.CategoryFinancial, "doc.rental_income_schedule", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.easements_encumbrances", true, model.PriorityHigh},
	},
	model.SectorFinancialServices: {
		{model.CategoryCompliance, "doc.financial_regulatory_licences", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.capital_adequacy_reports", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.aml_kyc_policies", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.regulatory_inspection_reports", true, model.PriorityHigh},
		{model.CategoryFinancial, "doc.loan_portfolio_analysis", true, model.PriorityHigh},
		{model.CategoryFinancial, "doc.provision_schedules", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.compliance_officer_reports", true, model.PriorityMedium},
		{model.CategoryOperational, "doc.it_cybersecurity_audit", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.client_complaints_register", false, model.PriorityMedium},
	},
	model.SectorRetail: {
		{model.CategoryCommercial, "doc.franchise_agreements", true, model.PriorityHigh},
		{model.CategoryCommercial, "doc.ecommerce_metrics", false, model.PriorityMedium},
		{model.CategoryLegal, "doc.store_leases", true, model.PriorityHigh},
		{model.CategoryIP, "doc.brand_registrations", true, model.PriorityHigh},
		{model.CategoryOperational, "doc.inventory_reports", true, model.PriorityMedium},
		{model.CategoryCommercial, "doc.loyalty_programme", false, model.PriorityLow},
		{model.CategoryCompliance, "doc.consumer_protection", true, model.PriorityMedium},
		{model.CategoryOperational, "doc.store_profitability", true, model.PriorityHigh},
	},
}

var jurisdictionTemplates = map[model.Jurisdiction][]Template{
	model.JurisdictionPortugal: {
		{model.CategoryLegal, "doc.commercial_registry_extracts", true, model.PriorityHigh},
		{model.CategoryTax, "doc.tax_clearance_certificates", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.rcbe_filing", true, model.PriorityHigh},
	},
	model.JurisdictionSpain: {
		{model.CategoryLegal, "doc.mercantile_registry_extracts", true, model.PriorityHigh},
		{model.CategoryTax, "doc.aeat_clearance_certificates", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.sepblac_filings", true, model.PriorityMedium},
	},
	model.JurisdictionInternational: {
		{model.CategoryCompliance, "doc.fdi_approvals", true, model.PriorityHigh},
		{model.CategoryCompliance, "doc.sanctions_screening", true, model.PriorityHigh},
		{model.CategoryLegal, "doc.group_structure_chart", true, model.PriorityHigh},
		{model.CategoryTax, "doc.withholding_tax_analysis", false, model.PriorityMedium},
	},
}
