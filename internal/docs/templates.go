package docs

// docTemplates holds every documentation template in one parse tree. Tables
// are rendered from the embedded datasets; the surrounding prose stays
// short on purpose.
const docTemplates = `
{{define "README.md"}}# Dynamic Digital Privacy Framework (DDP)

*An adaptive governance model for emerging technological threats.*

## Overview

The DDP Framework replaces static privacy regulation with a continuously
adapting governance loop built on DevSecOps principles: automated policy
enforcement, managed exceptions, and ethical deliberation for novel risks.

## Threat Landscape

| Threat | Year | Severity | Regulatory Coverage | DDP Response |
|--------|------|----------|---------------------|--------------|
{{range .Threats}}| {{.Name}} | {{.Year}} | {{.Severity}} | {{.Coverage}} | {{.Mitigation}} |
{{end}}
## Governance Model

The framework routes every request through a three-tier model:

{{range .Tiers}}- **{{.Title}}**: {{.Subtitle}} (volume: {{.Volume}}, success rate: {{.SuccessRate}}, avg time: {{.AvgTime}})
{{end}}
## Key Metrics

| Metric | Value | Target | Trend |
|--------|-------|--------|-------|
{{range .Metrics}}| {{.Name}} | {{.Value}} | {{.Target}} | {{.Trend}} |
{{end}}
## Roadmap

{{range .Milestones}}- **{{.Year}} {{.Title}}**: {{.Description}}
{{end}}{{end}}

{{define "IMPLEMENTATION.md"}}# Implementation Guide

Adopting the DDP Framework happens in three phases, one per governance tier.

## Phase 1: Automated Compliance

Wire policy checks into the existing CI/CD pipeline so routine enforcement
never needs a human. Stakeholders: {{with index .Tiers 0}}{{join .Stakeholders ", "}}{{end}}.

## Phase 2: Managed Exceptions

Stand up the exception review workflow for justified deviations.
Stakeholders: {{with index .Tiers 1}}{{join .Stakeholders ", "}}{{end}}.

## Phase 3: Ethical Deliberation

Charter the deliberation board for novel, high-risk issues; resolved cases
feed new policies back into Phase 1. Stakeholders: {{with index .Tiers 2}}{{join .Stakeholders ", "}}{{end}}.

## Compliance Baseline

| Regulation | Coverage | Open Violations |
|------------|----------|-----------------|
{{range .Compliance}}| {{.Regulation}} | {{.Coverage}}% | {{.Violations}} |
{{end}}{{end}}

{{define "ARCHITECTURE.md"}}# Architecture

The framework consists of three modular, interoperable tiers. Requests enter
at a single routing decision and escalate only when the tier below cannot
resolve them.

{{range .Tiers}}## {{.Title}}

{{.Subtitle}}.

- Volume: {{.Volume}}
- Success rate: {{.SuccessRate}}
- Average handling time: {{.AvgTime}}
- Stakeholders: {{join .Stakeholders ", "}}

{{end}}## Feedback Loop

Tier 3 resolutions produce new machine-enforceable policies, which lowers
future escalation volume. The loop closes back into Tier 1.
{{end}}

{{define "THREAT_MODEL.md"}}# Threat Model

Projected privacy threats through 2035, with the framework's planned
response to each.

{{range .Threats}}## {{.Name}} ({{.Year}})

- Severity: {{.Severity}}
- Regulatory coverage today: {{.Coverage}}
- DDP mitigation: {{.Mitigation}}

{{end}}{{end}}
`
