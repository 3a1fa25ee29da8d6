package content

import "github.com/pbhende/portfolio/internal/services/portfolio/domain/project"

// DefaultProjects returns the built-in project list in display order.
func DefaultProjects() []project.Record {
	return []project.Record{
		{
			Title:    "Multi-AI Agent Self Corrective RAG for Log Analysis",
			Subtitle: "Agentic workflow for automated log analysis & bug filing",
			Tech:     []string{"Python", "LangGraph", "RAG", "SQL", "Milvus", "NVIDIA NIMs"},
			Impact:   []string{"90% dup detection", "1200+ person-days/yr saved", "20+ teams onboarded"},
			Featured: true,
			Problem: "Engineering teams spend a huge amount of time analyzing logs, identifying issues, and manually drafting bug reports. " +
				"This not only eats into productivity but also delays defect detection, slows down releases, and increases the risk of duplicate or poor-quality bug reports.",
			Importance: "Manual bug analysis is repetitive, error-prone, and scales poorly as products grow. " +
				"A single missed or poorly documented bug can create downstream costs in testing, development, and customer satisfaction. " +
				"Automating this process with AI saves thousands of engineering hours, improves accuracy, and ensures consistency across teams.",
			Build: `I designed and led the development of BAT.AI, an agentic multi-AI workflow that:
• Analyzes logs and categorizes failures automatically.
• Drafts high-quality bug reports with consistent formatting.
• Detects duplicate bugs with over 90% accuracy.
• Supports multi-product modules with tailored classification agents.
• Provides explainable outputs and benchmarking via an RAG evaluation pipeline.
• Uses a self-corrective RAG mechanism: agents iteratively refine retrieval results to minimize hallucinations, improve trace coverage, and ensure bug reports are factually grounded.`,
			Extra: "Recognized for company-wide rollout; aligns with AI governance via measurable evaluation metrics.",
		},
		{
			Title:    "AI Code Review Assistant",
			Subtitle: "LLM-enhanced CI pipelines to speed up PR reviews",
			Tech:     []string{"Python", "GitLab", "LLM", "LangChain"},
			Impact:   []string{"35% faster code reviews", "Higher code quality", "Multi-region rollout"},
			Problem: "Code reviews were becoming a major bottleneck in our development pipeline. " +
				"Senior engineers were spending 20-30% of their time reviewing PRs, leading to delayed releases and reviewer fatigue. " +
				"Inconsistent review quality across teams meant some critical issues were missed while trivial style issues consumed disproportionate attention.",
			Importance: "Code reviews are critical for maintaining quality, but manual reviews don't scale with growing teams and codebases. " +
				"Automating routine checks allows human reviewers to focus on architecture, logic, and business requirements, the areas where human expertise truly matters. " +
				"This directly impacts delivery velocity and product quality.",
			Build: `I built an intelligent code review assistant that integrates seamlessly into GitLab CI/CD:
• Automated analysis of code changes for style violations, security risks, and test coverage gaps.
• Generated contextual summaries of PR changes with risk assessments and suggested improvements.
• Implemented smart filtering to highlight only the most critical issues requiring human attention.
• Created custom LLM prompts tuned for different code types (API changes, UI components, database migrations).
• Built feedback loops to continuously improve AI suggestions based on reviewer acceptance rates.`,
			Extra: "Mentored developers on interpreting AI feedback effectively and established best practices for human-AI collaboration in code reviews.",
		},
		{
			Title:    "Deep Learning Bug Deduplication",
			Subtitle: "NLP-based duplicate bug detection at scale",
			Tech:     []string{"Python", "NLP", "DL"},
			Impact:   []string{"96.5% accuracy", "40% less manual triage"},
			Problem: "Our bug tracking system was flooded with duplicate reports; sometimes the same issue would be filed 10+ times by different teams or customers. " +
				"Manual deduplication required engineers to read through hundreds of similar-sounding bug titles and descriptions, consuming valuable triage time and creating inconsistent decisions about what constituted a 'duplicate.'",
			Importance: "Duplicate bugs create noise that obscures real issues, inflate metrics, and waste engineering cycles. " +
				"When teams can't quickly identify if a bug is already known, they either spend time investigating resolved issues or miss critical patterns across similar reports. " +
				"Accurate deduplication is essential for maintaining clean backlogs and enabling data-driven prioritization.",
			Build: `I developed a sophisticated NLP-based deduplication system using deep learning:
• Engineered a multi-stage pipeline combining semantic similarity with metadata matching.
• Fine-tuned sentence transformers on our domain-specific bug corpus to capture technical nuances.
• Built ensemble models combining BERT embeddings, TF-IDF features, and structured data (product, severity, components).
• Implemented confidence scoring with human-in-the-loop verification for edge cases.
• Created automated clustering to identify bug patterns and potential root causes.`,
			Extra: "This system became the foundation for the deduplication component in BAT.AI, proving that focused ML solutions can evolve into comprehensive agentic workflows.",
		},
		{
			Title:    "RAG Evaluation Pipeline",
			Subtitle: "Custom evaluation pipeline with quantitative LLM metrics",
			Tech:     []string{"Python", "Milvus", "LangChain", "Eval"},
			Impact:   []string{"40% faster AI decisions", "Objective quality gates"},
			Problem: "As our RAG systems grew in complexity, we faced a critical challenge: how do you objectively measure if one RAG configuration is better than another? " +
				"Teams were making architectural decisions based on gut feeling or cherry-picked examples. " +
				"Without standardized evaluation, we couldn't confidently deploy changes, compare different embedding models, or optimize retrieval strategies.",
			Importance: "RAG systems directly impact user experience and business outcomes. " +
				"Poor retrieval leads to irrelevant answers, while hallucinations can erode trust in AI systems. " +
				"Objective evaluation enables data-driven decisions, prevents regressions, and provides the foundation for AI governance.",
			Build: `I designed and implemented a comprehensive RAG evaluation framework that became the gold standard for AI quality assessment:
• Built automated evaluation harnesses that run against every code change, preventing regressions.
• Implemented multi-dimensional metrics covering retrieval quality (precision/recall@k, MRR), generation quality (hallucination, coherence, relevance), and operational concerns (latency, cost).
• Created synthetic and real-world test datasets with ground truth annotations for consistent benchmarking.
• Developed automated report generation with regression detection and performance trending.
• Integrated evaluation gates into CI/CD pipelines, blocking deployments that don't meet quality thresholds.`,
			Extra: "This evaluation framework became the foundation for all RAG projects at the company, enabling confident iteration and serving as a model for AI governance.",
			Metrics: []string{
				"Hallucination",
				"Coherence",
				"Relevance",
				"Groundedness",
				"Answer Completeness",
				"P/R@k",
				"MRR",
				"Latency",
				"Cost",
			},
		},
		{
			Title:    "Spec–Drift Sentinel",
			Subtitle: "Detects and flags requirement drift using PRD/SRD/SDD docs",
			Tech:     []string{"Python", "LangChain", "Embeddings"},
			Impact:   []string{"Reduced misalignment", "Early detection of spec drift"},
			Problem: "Product requirements documents (PRDs), system requirements documents (SRDs), and system design documents (SDDs) were constantly evolving, but teams often worked from outdated versions. " +
				"Critical requirement changes were buried in document revisions, leading to features being built against obsolete specs.",
			Importance: "Requirement drift is one of the most expensive problems in software development. " +
				"When implementation diverges from current requirements, it leads to rework, missed deadlines, and products that don't meet stakeholder needs. " +
				"Early detection of spec changes allows teams to adjust course before significant resources are invested in the wrong direction.",
			Build: `I built an intelligent document monitoring system that tracks requirement evolution:
• Developed automated parsing for PRD/SRD/SDD documents across multiple formats and repositories.
• Implemented semantic change detection using embeddings to identify meaningful requirement shifts beyond simple text changes.
• Created intelligent alerting that distinguishes between minor edits and significant requirement modifications.
• Built cross-document consistency checking to flag conflicting requirements across related documents.
• Integrated with project management tools to automatically notify affected teams and update tracking systems.`,
			Extra: "This system became essential for maintaining alignment across distributed teams working on complex, multi-component products.",
		},
		{
			Title:    "Risk-Weighted Test Prioritizer",
			Subtitle: "AI-driven prioritization of test cases based on risk factors",
			Tech:     []string{"Python", "LangChain", "MinIO"},
			Impact:   []string{"Higher defect catch rate", "Optimized test execution"},
			Problem: "With thousands of test cases and limited CI/CD time budgets, teams were running tests in arbitrary order or simply executing everything, leading to long feedback cycles and delayed deployments. " +
				"When time constraints forced test suite truncation, teams had no principled way to decide which tests to skip.",
			Importance: "Test execution time directly impacts developer productivity and release velocity. " +
				"Smart prioritization ensures that the most critical and risk-prone areas are validated first, providing faster feedback on likely failure points.",
			Build: `I developed an intelligent test prioritization system:
• Built a multi-factor risk scoring model considering code complexity, change frequency, historical failure rates, and business impact.
• Implemented machine learning algorithms that learn from past test results to predict failure likelihood.
• Created dynamic prioritization that adapts based on recent code changes, focusing testing effort on modified and related components.
• Integrated with CI/CD pipelines to automatically reorder test execution based on real-time risk assessment.
• Developed analytics dashboards showing test effectiveness and risk coverage metrics.`,
			Extra: "This system enabled teams to catch critical issues 60% faster while reducing overall test execution time through intelligent test selection.",
		},
		{
			Title:    "Bug Reproduction Agent",
			Subtitle: "Turns bug reports into deterministic automated tests",
			Tech:     []string{"Python", "LLM", "Automation"},
			Impact:   []string{"Faster bug repro", "Linked repro tests in JIRA"},
			Problem: "Bug reproduction was a major bottleneck in our development process. " +
				"Engineers would spend hours trying to recreate issues from vague bug reports, often failing to reproduce the exact conditions that triggered the problem. " +
				"This led to bugs being marked as 'cannot reproduce' and later resurfacing in production.",
			Importance: "Reliable bug reproduction is essential for effective debugging and fix validation. " +
				"Without consistent reproduction, engineers waste time on guesswork, fixes may not address the root cause, and regressions can slip through testing.",
			Build: `I created an intelligent agent that transforms bug reports into executable test cases:
• Built natural language processing capabilities to extract steps to reproduce, expected vs. actual behavior, and environmental conditions from bug descriptions.
• Developed automated test generation that creates deterministic reproduction scripts from parsed bug information.
• Implemented integration with existing test frameworks so generated tests follow established patterns and can be maintained by the team.
• Created bidirectional linking between JIRA issues and generated tests, providing traceability and enabling automatic test execution on related code changes.
• Built validation mechanisms to verify that generated tests actually reproduce the reported behavior.`,
			Extra: "This system transformed bug investigation from a time-consuming manual process into an automated workflow, enabling faster debugging and more reliable fix validation.",
		},
		{
			Title:    "Mutation-Driven Test Booster",
			Subtitle: "Boosts test suite by injecting code mutations and checking coverage",
			Tech:     []string{"Python", "Mutation Testing", "LangChain"},
			Impact:   []string{"Improved coverage", "Found weak tests"},
			Problem: "High code coverage metrics were giving teams false confidence in their test suites. " +
				"Tests would pass consistently, but when real bugs were introduced, the same tests would continue to pass, missing critical regressions.",
			Importance: "Test quality is more important than test quantity. " +
				"Mutation testing reveals the true effectiveness of tests by measuring their ability to catch intentional code changes, ensuring that a test suite will catch real regressions.",
			Build: `I developed a mutation testing system focused on test quality:
• Built automated mutation injection that systematically introduces controlled bugs into the codebase (changing operators, modifying conditions, altering constants).
• Created mutation selection focusing on high-risk code paths and recent changes rather than exhaustive mutation.
• Implemented test suite analysis to identify which tests kill which mutations, revealing gaps in test effectiveness.
• Developed AI-powered suggestions for new test cases targeting uncaught mutations.
• Built reporting dashboards that translate mutation scores into actionable insights for development teams.`,
			Extra: "This system helped teams move beyond coverage theater to actual test effectiveness.",
		},
		{
			Title:    "QA Knowledge Graph + RAG Assistant",
			Subtitle: "Knowledge graph and RAG for QA domain knowledge and answers",
			Tech:     []string{"Python", "Knowledge Graph", "RAG"},
			Impact:   []string{"Faster QA onboarding", "Improved issue resolution"},
			Problem: "QA domain knowledge was scattered across wikis, chat threads, email chains, and tribal knowledge held by senior team members. " +
				"New QA engineers would spend weeks ramping up, repeatedly asking questions that had been answered countless times before.",
			Importance: "QA effectiveness depends heavily on accumulated knowledge about product behavior, test strategies, and common failure patterns. " +
				"Centralizing and making this knowledge queryable dramatically improves both efficiency and quality.",
			Build: `I designed and built a QA knowledge management system combining graph databases with retrieval:
• Constructed a knowledge graph capturing relationships between products, features, test cases, known issues, and resolution patterns.
• Implemented automated knowledge extraction from existing documentation, tickets, and communication channels.
• Built a RAG-powered assistant that provides contextual answers to QA questions, combining structured knowledge with relevant documentation.
• Created knowledge discovery that suggests related information and identifies knowledge gaps.
• Integrated the system into daily QA workflows through chat bots, IDE extensions, and web interfaces.`,
			Extra: "This system became the central hub for QA operations, reducing onboarding time and improving the consistency of testing practices across teams.",
		},
	}
}
